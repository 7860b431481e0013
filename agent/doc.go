// Package agent models the creature that walks a precomputed path.
//
// An Agent is a small state machine:
//
//	Idle ──Follow(non-empty)──▶ Moving ──Advance──▶ Moving … ──▶ Arrived
//	  │                           │
//	  └──Follow(empty)──▶ Stuck ◀─┘ (path ends early or cannot be followed)
//
// Arrived and Stuck are terminal. Advance in a terminal state reports
// ErrTerminal and leaves position, value and history untouched.
//
// The agent never plans: it consumes the path it was handed, one cell per
// Advance, charging each entered cell's cost to its accumulated value.
package agent
