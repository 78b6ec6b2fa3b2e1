// Package sale_service_api implements the generated gRPC interface for the
// sale service, translating between wire messages and the domain.
package sale_service_api

import (
	"context"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/gfilippi/salesvc/internal/apperr"
	"github.com/gfilippi/salesvc/internal/domain"
	"github.com/gfilippi/salesvc/internal/pb/flightmngr"
	"github.com/gfilippi/salesvc/internal/pb/salesvc"
	"github.com/gfilippi/salesvc/internal/pb/ticketsrvc"
	"github.com/gfilippi/salesvc/internal/service/sale"
)

type Server struct {
	sale sale.SaleUseCase
	salesvc.UnimplementedSaleServer
}

func NewServer(saleSvc sale.SaleUseCase) *Server {
	return &Server{sale: saleSvc}
}

func (s *Server) SearchOffers(ctx context.Context, req *salesvc.SearchOffersRequest) (*salesvc.SearchOffersResponse, error) {
	if req.GetDepartureDate() == nil {
		return nil, apperr.GRPCStatus(apperr.ErrBadRequest)
	}

	offers, err := s.sale.SearchOffers(ctx, sale.SearchOffersInput{
		DepartureAirport: req.GetDepartureAirport(),
		ArrivalAirport:   req.GetArrivalAirport(),
		DepartureDate:    req.GetDepartureDate().AsTime(),
	})
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	resp := &salesvc.SearchOffersResponse{
		Offers: make([]*salesvc.Offer, 0, len(offers)),
	}
	for _, o := range offers {
		resp.Offers = append(resp.Offers, toPBOffer(o))
	}
	return resp, nil
}

func (s *Server) PurchaseOffer(ctx context.Context, req *salesvc.PurchaseOfferRequest) (*salesvc.PurchaseOfferResponse, error) {
	offer := req.GetOffer()
	data := req.GetData()

	// Malformed requests are rejected before any cryptographic or backend
	// work is attempted.
	if offer == nil || data == nil || offer.GetPrice() == nil || offer.GetExpiration() == nil {
		return nil, apperr.GRPCStatus(apperr.ErrBadRequest)
	}

	ticket, err := s.sale.PurchaseOffer(ctx,
		domain.OfferClaims{
			FlightID:   offer.GetFlightId(),
			Price:      offer.GetPrice(),
			Expiration: offer.GetExpiration().AsTime(),
		},
		req.GetTag(),
		domain.Passenger{
			FirstName: data.GetFirstName(),
			LastName:  data.GetLastName(),
			Email:     data.GetEmail(),
		},
	)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	return &salesvc.PurchaseOfferResponse{Ticket: toPBTicket(ticket)}, nil
}

func toPBOffer(o domain.Offer) *salesvc.Offer {
	return &salesvc.Offer{
		Flight: &flightmngr.Flight{
			Id:            o.Flight.ID,
			OriginId:      o.Flight.OriginID,
			DestinationId: o.Flight.DestinationID,
			DepartureTime: timestamppb.New(o.Flight.DepartureTime),
			ArrivalTime:   timestamppb.New(o.Flight.ArrivalTime),
			Cancelled:     o.Flight.Cancelled,
		},
		Price:      o.Price,
		Expiration: timestamppb.New(o.Expiration),
		Tag:        o.Tag,
	}
}

func toPBTicket(t *domain.Ticket) *ticketsrvc.Ticket {
	if t == nil {
		return nil
	}
	return &ticketsrvc.Ticket{
		Id:       t.ID,
		FlightId: t.FlightID,
		Passenger: &ticketsrvc.PassengerDetails{
			FirstName: t.Passenger.FirstName,
			LastName:  t.Passenger.LastName,
			Email:     t.Passenger.Email,
		},
		ReservationTime: timestamppb.New(t.ReservationTime),
	}
}
