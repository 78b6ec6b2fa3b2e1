package domain

import (
	"time"

	"google.golang.org/genproto/googleapis/type/money"
)

// Offer is a quoted, time-limited combination of a flight and its price.
// Tag authenticates (flight id, price, expiration); the offer is never stored
// server-side, its whole state travels with the client.
type Offer struct {
	Flight     Flight
	Price      *money.Money
	Expiration time.Time
	Tag        []byte
}

// OfferClaims are the fields a purchase request echoes back for verification.
type OfferClaims struct {
	FlightID   string
	Price      *money.Money
	Expiration time.Time
}

type Passenger struct {
	FirstName string
	LastName  string
	Email     string
}

// Ticket is owned by the ticketsrvc backend and passed through unmodified.
type Ticket struct {
	ID              string
	FlightID        string
	Passenger       Passenger
	ReservationTime time.Time
}
