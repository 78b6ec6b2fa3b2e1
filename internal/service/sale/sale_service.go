// Package sale implements the offer lifecycle: searching flights into priced,
// signed, time-limited offers and converting a verified offer into a ticket.
package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genproto/googleapis/type/money"

	"github.com/gfilippi/salesvc/internal/domain"
	"github.com/gfilippi/salesvc/internal/kafka"
)

// offerValidity is how long a quoted price stays purchasable. All offers
// from one search share a single expiration, so a client cannot selectively
// extend one flight's validity by resubmitting.
const offerValidity = 15 * time.Minute

type SaleUseCase interface {
	SearchOffers(ctx context.Context, input SearchOffersInput) ([]domain.Offer, error)
	PurchaseOffer(ctx context.Context, claims domain.OfferClaims, tag []byte, passenger domain.Passenger) (*domain.Ticket, error)
}

// Backends is the gateway to the three downstream services.
type Backends interface {
	SearchFlights(ctx context.Context, originID, destinationID string, departureDay time.Time) ([]domain.Flight, error)
	EstimatePrice(ctx context.Context, flight domain.Flight) (*money.Money, error)
	IssueTicket(ctx context.Context, flightID string, passenger domain.Passenger, reservationTime time.Time) (*domain.Ticket, error)
}

// Authenticator signs and checks offer claims.
type Authenticator interface {
	GenerateTag(flightID string, price *money.Money, expiration int64) []byte
	VerifyOffer(flightID string, price *money.Money, expiration int64, tag []byte) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type SaleService struct {
	backends           Backends
	tags               Authenticator
	producer           Producer
	notificationsTopic string
	offerValidity      time.Duration
}

type SearchOffersInput struct {
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    time.Time
}

type SaleServiceOption func(*SaleService)

func WithNotifications(producer Producer, topic string) SaleServiceOption {
	return func(s *SaleService) {
		s.producer = producer
		s.notificationsTopic = topic
	}
}

func WithOfferValidity(d time.Duration) SaleServiceOption {
	return func(s *SaleService) {
		s.offerValidity = d
	}
}

func NewSaleService(backends Backends, tags Authenticator, opts ...SaleServiceOption) *SaleService {
	service := &SaleService{
		backends:      backends,
		tags:          tags,
		offerValidity: offerValidity,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// SearchOffers fans out one price estimation per candidate flight and signs
// each result. All-or-nothing: if any flight cannot be priced and signed, the
// whole search fails rather than returning offers it cannot guarantee.
func (s *SaleService) SearchOffers(ctx context.Context, input SearchOffersInput) ([]domain.Offer, error) {
	flights, err := s.backends.SearchFlights(ctx, input.DepartureAirport, input.ArrivalAirport, input.DepartureDate)
	if err != nil {
		return nil, err
	}

	// One whole-second expiration for the whole batch.
	expiration := time.Unix(time.Now().Add(s.offerValidity).Unix(), 0)

	// Results are joined positionally, so the output keeps the search order
	// no matter which estimation finishes first. Each task writes only its
	// own slot; no lock needed.
	offers := make([]domain.Offer, len(flights))
	g, ctx := errgroup.WithContext(ctx)
	for i, flight := range flights {
		g.Go(func() error {
			price, err := s.backends.EstimatePrice(ctx, flight)
			if err != nil {
				return err
			}
			offers[i] = domain.Offer{
				Flight:     flight,
				Price:      price,
				Expiration: expiration,
				Tag:        s.tags.GenerateTag(flight.ID, price, expiration.Unix()),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return offers, nil
}

// PurchaseOffer verifies the echoed claims before any backend work; an
// invalid or expired offer never reaches the ticketing backend.
func (s *SaleService) PurchaseOffer(ctx context.Context, claims domain.OfferClaims, tag []byte, passenger domain.Passenger) (*domain.Ticket, error) {
	if err := s.tags.VerifyOffer(claims.FlightID, claims.Price, claims.Expiration.Unix(), tag); err != nil {
		return nil, err
	}

	ticket, err := s.backends.IssueTicket(ctx, claims.FlightID, passenger, time.Now())
	if err != nil {
		return nil, err
	}

	s.publishPurchased(ctx, ticket, claims.Price)
	return ticket, nil
}

// publishPurchased emits a notification event, best-effort: the ticket is
// already issued, so a broker failure must not fail the purchase.
func (s *SaleService) publishPurchased(ctx context.Context, ticket *domain.Ticket, price *money.Money) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	event := kafka.OfferEvent{
		ID:              uuid.NewString(),
		Type:            "offer_purchased",
		TicketID:        ticket.ID,
		FlightID:        ticket.FlightID,
		Email:           ticket.Passenger.Email,
		CurrencyCode:    price.GetCurrencyCode(),
		PriceUnits:      price.GetUnits(),
		PriceNanos:      price.GetNanos(),
		ReservationTime: ticket.ReservationTime,
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, ticket.ID, event); err != nil {
		log.Warn().Err(err).Str("ticket_id", ticket.ID).Msg("publish offer_purchased event failed")
	}
}

var _ SaleUseCase = (*SaleService)(nil)
