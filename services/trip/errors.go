package trip

import "errors"

var (
	// ErrInvalidTransition is returned when the target status is not
	// reachable from the current one, or the actor may not trigger it.
	// Nothing is mutated.
	ErrInvalidTransition = errors.New("invalid trip transition")

	// ErrNoDriverAvailable is returned when no candidate accepted the
	// trip within the matching window.
	ErrNoDriverAvailable = errors.New("no driver available")

	// ErrAssignmentConflict signals a lost compare-and-set race on a
	// driver's assignment slot. Absorbed by the coordinator, never
	// surfaced to clients.
	ErrAssignmentConflict = errors.New("driver already assigned")

	// ErrTripNotFound is returned when the trip repository has no such trip
	ErrTripNotFound = errors.New("trip not found")

	// ErrStaleChannel marks a message arriving on a superseded handle.
	// Silently dropped by the registry.
	ErrStaleChannel = errors.New("stale channel")
)
