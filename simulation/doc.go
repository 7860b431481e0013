// Package simulation wires a grid, a path finder and a creature together for
// one or more runs.
//
// A run computes the path once, drops the cell the creature already occupies,
// then alternates Renderer.Render, Pacer.Wait and agent.Advance until the
// creature arrives or is stuck. Rendering and pacing are collaborators behind
// interfaces, so the same driver serves the interactive CLI and tests.
//
// Cancellation is cooperative: a Pacer may decline to continue, or return the
// error of a cancelled context. Nothing runs in the background.
package simulation
