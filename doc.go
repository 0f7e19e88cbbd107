// Package stepsearch is a step-wise graph search engine for teaching and
// visualising how DFS, BFS, Dijkstra and A* explore a graph.
//
// 🚀 What is stepsearch?
//
//	A small generic library where one search advances one expansion at a
//	time, so every intermediate state can be drawn or inspected:
//		• Graph primitives: keyed nodes, weighted links, extra node costs
//		• Frontiers: stack, queue and priority queue with decrease-key
//		• Ticker: start, step, pause, resume, restart and a step clock
//		• Practice: a tutor that checks hand-driven expansions
//		• Grids: 4/8-connected tile maps, islands and carved corridors
//		• Session: a single control loop fed by queued commands
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      generic Graph, links, costs and grid Points
//	frontier/  Stack, Queue and Priority frontiers
//	search/    Params, Ticker, events and path reconstruction
//	practice/  Tutor, hints and tutorial Scripts
//	gridgraph/ GridGraph, components, CarvePath and Render
//	session/   Session loop, Mailbox and random endpoints
//	config/    YAML world files
//	cmd/stepsearch run, trace and practice from the command line
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// Breadth-first from A to D expands A, B, C, D and reports the path A→B→D.
// Every expansion can be taken with Ticker.Step, by the clock through
// Ticker.Advance, or by hand through practice.Tutor.
//
//	go get github.com/katalvlaran/stepsearch
package stepsearch
