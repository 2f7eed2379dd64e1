package ballet

import "errors"

// Error taxonomy for a dance run. Parameter errors surface before any
// device interaction; device errors surface only after bounded retries
// are exhausted; status-feed errors are absorbed by the pacing policy
// and never abort a run on their own.
var (
	// ErrInvalidParameter marks bad geometry input. Caller error,
	// reported immediately, never retried.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotReachable means the device rejected a target as unreachable.
	ErrNotReachable = errors.New("device: target not reachable")

	// ErrDisconnected means the connection to the device dropped.
	ErrDisconnected = errors.New("device: disconnected")

	// ErrTimeout means the device did not answer in time.
	ErrTimeout = errors.New("device: timeout")

	// ErrStatusParse marks a malformed status feed. Always treated as
	// "status unknown", never escalated to a run failure.
	ErrStatusParse = errors.New("device: malformed status")
)
