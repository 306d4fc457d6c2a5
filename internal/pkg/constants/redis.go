package constants

// Redis key formats
const (
	KeyDriverGeo     = "drivers:geo:%s"     // Format: drivers:geo:{cab_type}, GEO set of online drivers
	KeyDriverProfile = "driver:profile:%s"  // Format: driver:profile:{driver_id}
	KeyDriverHold    = "driver:hold:%s"     // Format: driver:hold:{driver_id}, value is the holding trip id
	KeyTripPosition  = "trip:position:%s"   // Format: trip:position:{trip_id}, last known sample
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldSequence  = "seq"
	FieldTimestamp = "ts"
	FieldName      = "name"
	FieldCabType   = "cab_type"
	FieldPlate     = "plate"
	FieldTrips     = "trips"
	FieldAvailable = "available"
)
