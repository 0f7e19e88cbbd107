// Package session hosts the single control loop that owns a search.
//
// UI input and control requests arrive as Commands through Submit, which
// any goroutine may call. Background world activity arrives as Messages
// posted to a Mailbox. Neither touches the search directly: both are
// drained by Tick on the control goroutine, which then advances the step
// clock. Context carries the injected random source used to pick search
// endpoints on a grid.
package session
