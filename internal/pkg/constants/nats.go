package constants

// NATS subjects published for external collaborators
// (persistence, billing, analytics)
const (
	SubjectTripStatus   = "trip.status"
	SubjectTripPosition = "trip.position"
	SubjectTripAssigned = "trip.assigned"
	SubjectMatchFailed  = "match.failed"
)
