package domain

import "time"

// Flight is owned by the flightmngr backend; this service only reads it.
type Flight struct {
	ID            string
	OriginID      string
	DestinationID string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Cancelled     bool
}
