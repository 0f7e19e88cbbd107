// Package practice turns a search.Ticker into an exercise: the user performs
// each expansion by hand and every proposal is checked against the
// algorithm's canonical next choice.
//
// An expansion takes two stages:
//
//  1. StageSelectCurrent: propose the key the frontier would take next.
//     Successors already in the frontier are relaxed automatically.
//  2. StageAddFrontier: propose the undiscovered successors of that key, in
//     any order. Once none is left the expansion completes.
//
// Wrong proposals return ErrInvalidSelection and leave the search as it
// was. The first rejection in each stage carries a hint; later ones do not
// until Begin starts a new exercise. A Script adds tutorial messages that
// fire once their condition holds.
//
// The stage is read from the ticker, not stored. A Step or clock tick taken
// during an exercise completes the expansion in progress and the exercise
// resumes at StageSelectCurrent; a search that ends under it ends the
// exercise.
package practice
