// Package voidwalk is a small simulation of a creature crossing a grid of
// entry costs by the cheapest route.
//
// Layout:
//
//	gridgraph/    immutable cost grid: obstacles, presets, random generation,
//	              regions and wall breaching
//	dijkstra/     single-source cheapest path between two cells
//	agent/        the creature, following a path one cell at a time
//	simulation/   run driver: plan once, then render, pace and advance
//	render/       console renderer for frames and outcomes
//	cmd/voidwalk/ interactive CLI (random, preset, inspect)
//
// Costs are charged on entry: the start cell is free, every other cell of
// the path adds its value, and obstacles can never be entered.
//
// Quick ASCII example:
//
//	🟥   1   1
//	 1  ⬛   1
//	 1   1  🟩
//
// costs 3 along the top-right route.
//
//	go install github.com/katalvlaran/voidwalk/cmd/voidwalk@latest
package voidwalk
