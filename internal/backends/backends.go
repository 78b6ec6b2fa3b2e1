// Package backends holds the typed client handles for the three downstream
// services. Connections are lazy, shared and safe for concurrent use; a
// connection failure only surfaces when a call is attempted.
package backends

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genproto/googleapis/type/money"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/gfilippi/salesvc/internal/apperr"
	"github.com/gfilippi/salesvc/internal/domain"
	"github.com/gfilippi/salesvc/internal/pb/flightmngr"
	"github.com/gfilippi/salesvc/internal/pb/priceest"
	"github.com/gfilippi/salesvc/internal/pb/ticketsrvc"
)

type Gateway struct {
	flights   flightmngr.FlightsClient
	prices    priceest.PriceEstimationClient
	tickets   ticketsrvc.TicketsClient
	fakePrice bool
}

type Option func(*Gateway)

// WithFakePrice bypasses the pricing backend with a fixed amount. Local
// testing escape hatch, never for production.
func WithFakePrice() Option {
	return func(g *Gateway) {
		g.fakePrice = true
		log.Warn().Msg("fake price estimation enabled")
	}
}

// NewGateway builds a gateway over already-constructed clients.
func NewGateway(flights flightmngr.FlightsClient, prices priceest.PriceEstimationClient, tickets ticketsrvc.TicketsClient, opts ...Option) *Gateway {
	g := &Gateway{flights: flights, prices: prices, tickets: tickets}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dial creates lazy client connections to the three backends.
func Dial(flightmngrURL, priceestURL, ticketsrvcURL string, opts ...Option) (*Gateway, error) {
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	flightsConn, err := grpc.NewClient(flightmngrURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial flightmngr %s: %w", flightmngrURL, err)
	}
	pricesConn, err := grpc.NewClient(priceestURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial priceest %s: %w", priceestURL, err)
	}
	ticketsConn, err := grpc.NewClient(ticketsrvcURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial ticketsrvc %s: %w", ticketsrvcURL, err)
	}

	return NewGateway(
		flightmngr.NewFlightsClient(flightsConn),
		priceest.NewPriceEstimationClient(pricesConn),
		ticketsrvc.NewTicketsClient(ticketsConn),
		opts...,
	), nil
}

// SearchFlights returns the backend's candidate set unfiltered; an empty
// result is not an error.
func (g *Gateway) SearchFlights(ctx context.Context, originID, destinationID string, departureDay time.Time) ([]domain.Flight, error) {
	resp, err := g.flights.SearchFlights(ctx, &flightmngr.SearchFlightsRequest{
		OriginId:      originID,
		DestinationId: destinationID,
		DepartureDay:  timestamppb.New(departureDay),
	})
	if err != nil {
		return nil, backendErr("flightmngr", err)
	}

	flights := make([]domain.Flight, 0, len(resp.GetFlights()))
	for _, f := range resp.GetFlights() {
		flights = append(flights, toDomainFlight(f))
	}
	return flights, nil
}

// EstimatePrice asks the pricing backend for the given flight. A success
// response without a price is a contract violation, not a backend failure.
func (g *Gateway) EstimatePrice(ctx context.Context, flight domain.Flight) (*money.Money, error) {
	if g.fakePrice {
		return &money.Money{CurrencyCode: "USD", Units: 100}, nil
	}

	resp, err := g.prices.EstimatePrice(ctx, &priceest.EstimatePriceRequest{
		Flight: &priceest.FlightDetails{
			OriginId:      flight.OriginID,
			DestinationId: flight.DestinationID,
			DepartureTime: timestamppb.New(flight.DepartureTime),
			ArrivalTime:   timestamppb.New(flight.ArrivalTime),
		},
	})
	if err != nil {
		return nil, backendErr("priceest", err)
	}
	if resp.GetPrice() == nil {
		return nil, apperr.Unexpected("price estimation returned no price")
	}
	return resp.GetPrice(), nil
}

// IssueTicket forwards to the ticketing backend and returns its record
// verbatim. Non-idempotent: never retried.
func (g *Gateway) IssueTicket(ctx context.Context, flightID string, passenger domain.Passenger, reservationTime time.Time) (*domain.Ticket, error) {
	resp, err := g.tickets.CreateTicket(ctx, &ticketsrvc.CreateTicketRequest{
		FlightId: flightID,
		Passenger: &ticketsrvc.PassengerDetails{
			FirstName: passenger.FirstName,
			LastName:  passenger.LastName,
			Email:     passenger.Email,
		},
		ReservationTime: timestamppb.New(reservationTime),
	})
	if err != nil {
		return nil, backendErr("ticketsrvc", err)
	}

	t := resp.GetTicket()
	if t == nil {
		return nil, apperr.Unexpected("ticket creation returned no ticket")
	}
	return &domain.Ticket{
		ID:       t.GetId(),
		FlightID: t.GetFlightId(),
		Passenger: domain.Passenger{
			FirstName: t.GetPassenger().GetFirstName(),
			LastName:  t.GetPassenger().GetLastName(),
			Email:     t.GetPassenger().GetEmail(),
		},
		ReservationTime: t.GetReservationTime().AsTime(),
	}, nil
}

func toDomainFlight(f *flightmngr.Flight) domain.Flight {
	return domain.Flight{
		ID:            f.GetId(),
		OriginID:      f.GetOriginId(),
		DestinationID: f.GetDestinationId(),
		DepartureTime: f.GetDepartureTime().AsTime(),
		ArrivalTime:   f.GetArrivalTime().AsTime(),
		Cancelled:     f.GetCancelled(),
	}
}

// backendErr keeps the downstream status for meaningful codes and marks
// connectivity failures as unavailable.
func backendErr(name string, err error) error {
	if status.Code(err) == codes.Unavailable {
		return fmt.Errorf("%w: %s: %v", apperr.ErrBackendUnavailable, name, err)
	}
	return fmt.Errorf("call %s: %w", name, err)
}
