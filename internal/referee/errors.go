package referee

import "errors"

var (
	// ErrBusy signals that a mutating call is already in flight for the
	// session. Concurrent mutation is rejected rather than queued so event
	// ordering stays deterministic.
	ErrBusy = errors.New("session busy: operation in flight")

	// ErrNotActive signals an operation that requires a verified, live session.
	ErrNotActive = errors.New("session not active")

	// ErrAlreadyStarted signals a verify attempt on a session that already
	// holds a match.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrEventIndex signals a remove with an index outside the side's
	// current event list.
	ErrEventIndex = errors.New("event index out of range")
)
