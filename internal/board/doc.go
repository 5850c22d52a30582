// Package board holds the hiring board state and its transitions.
//
// Transitions are pure: Reduce and Apply take a board and an action and
// return the next board without mutating the input. Every transition is
// total. Input that cannot be applied (missing fields, unknown columns,
// stale candidate ids) yields the unchanged board rather than an error.
//
// Store holds the current board for its single owner and is not safe
// for concurrent use.
package board
