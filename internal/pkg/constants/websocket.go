package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Client -> gateway
	EventSubscribe         = "subscribe"
	EventReportPosition    = "report_position"
	EventRequestTransition = "request_transition"
	EventResume            = "resume"

	// Gateway -> client
	EventStatusChanged  = "status_changed"
	EventDriverAssigned = "driver_assigned"
	EventPositionUpdate = "position_update"
	EventMatchFailed    = "match_failed"
	EventSnapshot       = "snapshot"
	EventSubscribed     = "subscribed"
)

// WebSocket error codes
const (
	ErrorInvalidFormat     = "invalid_format"
	ErrorUnauthorized      = "unauthorized"
	ErrorInternalError     = "internal_error"
	ErrorTripNotFound      = "trip_not_found"
	ErrorInvalidTransition = "invalid_transition"
	ErrorRoleNotAllowed    = "role_not_allowed"
	ErrorAlreadySubscribed = "already_subscribed"
)
