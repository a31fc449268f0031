package lootledger

import "errors"

// The engine's failure taxonomy. All of these are local, recoverable
// conditions reported synchronously to the caller; the engine never retries
// and never panics on them. Callers match with errors.Is.
var (
	// ErrInvalidAmount reports a negative money value presented to a posting
	// or event-injection path.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNoActiveSession reports a mutating call while no session is active.
	ErrNoActiveSession = errors.New("no active session")

	// ErrAlreadyActive reports a Start while a session is already active.
	ErrAlreadyActive = errors.New("a session is already active")

	// ErrInsufficientHoldings reports a FIFO consumption of more units than held.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrInvalidItem reports an operation referencing an item identifier with
	// no resolvable metadata.
	ErrInvalidItem = errors.New("invalid item")
)
