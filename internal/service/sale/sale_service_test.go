package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/type/money"

	"github.com/gfilippi/salesvc/internal/domain"
	"github.com/gfilippi/salesvc/internal/tokens"
)

type MockBackends struct {
	mock.Mock
}

func (m *MockBackends) SearchFlights(ctx context.Context, originID, destinationID string, departureDay time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, originID, destinationID, departureDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockBackends) EstimatePrice(ctx context.Context, flight domain.Flight) (*money.Money, error) {
	args := m.Called(ctx, flight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*money.Money), args.Error(1)
}

func (m *MockBackends) IssueTicket(ctx context.Context, flightID string, passenger domain.Passenger, reservationTime time.Time) (*domain.Ticket, error) {
	args := m.Called(ctx, flightID, passenger, reservationTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func flight(id string) domain.Flight {
	return domain.Flight{
		ID:            id,
		OriginID:      "SFO",
		DestinationID: "JFK",
		DepartureTime: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2024, 6, 1, 17, 30, 0, 0, time.UTC),
	}
}

func usd(units int64) *money.Money {
	return &money.Money{CurrencyCode: "USD", Units: units}
}

func TestSaleService_SearchOffers_Success(t *testing.T) {
	mockBackends := &MockBackends{}
	manager := tokens.NewTagManager([]byte("secret"))
	service := NewSaleService(mockBackends, manager)

	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mockBackends.On("SearchFlights", ctx, "SFO", "JFK", day).
		Return([]domain.Flight{flight("F1")}, nil).Once()
	mockBackends.On("EstimatePrice", mock.Anything, flight("F1")).
		Return(usd(120), nil).Once()

	before := time.Now()
	offers, err := service.SearchOffers(ctx, SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	})

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "F1", offers[0].Flight.ID)
	assert.Equal(t, usd(120), offers[0].Price)

	// Expiration lands about fifteen minutes out.
	assert.WithinDuration(t, before.Add(offerValidity), offers[0].Expiration, 2*time.Second)

	// The returned tag must verify against the offer's own fields.
	assert.NoError(t, manager.VerifyOffer("F1", offers[0].Price, offers[0].Expiration.Unix(), offers[0].Tag))

	mockBackends.AssertExpectations(t)
}

func TestSaleService_SearchOffers_SharedExpiration(t *testing.T) {
	mockBackends := &MockBackends{}
	service := NewSaleService(mockBackends, tokens.NewTagManager([]byte("secret")))

	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mockBackends.On("SearchFlights", ctx, "SFO", "JFK", day).
		Return([]domain.Flight{flight("F1"), flight("F2"), flight("F3")}, nil).Once()
	mockBackends.On("EstimatePrice", mock.Anything, mock.Anything).
		Return(usd(100), nil).Times(3)

	offers, err := service.SearchOffers(ctx, SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	})

	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, offers[0].Expiration, offers[1].Expiration)
	assert.Equal(t, offers[1].Expiration, offers[2].Expiration)
}

func TestSaleService_SearchOffers_OrderPreserved(t *testing.T) {
	mockBackends := &MockBackends{}
	service := NewSaleService(mockBackends, tokens.NewTagManager([]byte("secret")))

	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mockBackends.On("SearchFlights", ctx, "SFO", "JFK", day).
		Return([]domain.Flight{flight("A"), flight("B"), flight("C")}, nil).Once()

	// A finishes last, C first; the result must still read A, B, C.
	mockBackends.On("EstimatePrice", mock.Anything, flight("A")).
		Run(func(mock.Arguments) { time.Sleep(40 * time.Millisecond) }).
		Return(usd(1), nil).Once()
	mockBackends.On("EstimatePrice", mock.Anything, flight("B")).
		Run(func(mock.Arguments) { time.Sleep(20 * time.Millisecond) }).
		Return(usd(2), nil).Once()
	mockBackends.On("EstimatePrice", mock.Anything, flight("C")).
		Return(usd(3), nil).Once()

	offers, err := service.SearchOffers(ctx, SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	})

	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "A", offers[0].Flight.ID)
	assert.Equal(t, "B", offers[1].Flight.ID)
	assert.Equal(t, "C", offers[2].Flight.ID)
	assert.EqualValues(t, 1, offers[0].Price.GetUnits())
	assert.EqualValues(t, 2, offers[1].Price.GetUnits())
	assert.EqualValues(t, 3, offers[2].Price.GetUnits())
}

func TestSaleService_SearchOffers_AllOrNothing(t *testing.T) {
	mockBackends := &MockBackends{}
	service := NewSaleService(mockBackends, tokens.NewTagManager([]byte("secret")))

	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	estimateErr := errors.New("pricing blew up")

	mockBackends.On("SearchFlights", ctx, "SFO", "JFK", day).
		Return([]domain.Flight{flight("A"), flight("B"), flight("C")}, nil).Once()
	mockBackends.On("EstimatePrice", mock.Anything, flight("A")).Return(usd(1), nil).Maybe()
	mockBackends.On("EstimatePrice", mock.Anything, flight("B")).Return(nil, estimateErr).Once()
	mockBackends.On("EstimatePrice", mock.Anything, flight("C")).Return(usd(3), nil).Maybe()

	offers, err := service.SearchOffers(ctx, SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	})

	assert.ErrorIs(t, err, estimateErr)
	assert.Nil(t, offers)
}

func TestSaleService_SearchOffers_SearchErrorPropagates(t *testing.T) {
	mockBackends := &MockBackends{}
	service := NewSaleService(mockBackends, tokens.NewTagManager([]byte("secret")))

	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	searchErr := errors.New("flightmngr down")

	mockBackends.On("SearchFlights", ctx, "SFO", "JFK", day).Return(nil, searchErr).Once()

	offers, err := service.SearchOffers(ctx, SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	})

	assert.ErrorIs(t, err, searchErr)
	assert.Nil(t, offers)
	mockBackends.AssertNotCalled(t, "EstimatePrice", mock.Anything, mock.Anything)
}

func TestSaleService_SearchOffers_NoFlights(t *testing.T) {
	mockBackends := &MockBackends{}
	service := NewSaleService(mockBackends, tokens.NewTagManager([]byte("secret")))

	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mockBackends.On("SearchFlights", ctx, "SFO", "JFK", day).
		Return([]domain.Flight{}, nil).Once()

	offers, err := service.SearchOffers(ctx, SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	})

	assert.NoError(t, err)
	assert.Empty(t, offers)
}

func TestSaleService_PurchaseOffer_Success(t *testing.T) {
	mockBackends := &MockBackends{}
	mockProducer := &MockProducer{}
	manager := tokens.NewTagManager([]byte("secret"))
	service := NewSaleService(mockBackends, manager,
		WithNotifications(mockProducer, "sale_notifications"))

	ctx := context.Background()
	claims := domain.OfferClaims{
		FlightID:   "F1",
		Price:      usd(120),
		Expiration: time.Unix(time.Now().Add(10*time.Minute).Unix(), 0),
	}
	tag := manager.GenerateTag(claims.FlightID, claims.Price, claims.Expiration.Unix())
	passenger := domain.Passenger{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	ticket := &domain.Ticket{ID: "T1", FlightID: "F1", Passenger: passenger, ReservationTime: time.Now()}

	mockBackends.On("IssueTicket", ctx, "F1", passenger, mock.AnythingOfType("time.Time")).
		Return(ticket, nil).Once()
	mockProducer.On("Publish", ctx, "sale_notifications", "T1", mock.Anything).
		Return(nil).Once()

	got, err := service.PurchaseOffer(ctx, claims, tag, passenger)

	require.NoError(t, err)
	assert.Equal(t, ticket, got)
	mockBackends.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestSaleService_PurchaseOffer_TamperedTag(t *testing.T) {
	mockBackends := &MockBackends{}
	manager := tokens.NewTagManager([]byte("secret"))
	service := NewSaleService(mockBackends, manager)

	ctx := context.Background()
	claims := domain.OfferClaims{
		FlightID:   "F1",
		Price:      usd(120),
		Expiration: time.Unix(time.Now().Add(10*time.Minute).Unix(), 0),
	}
	tag := manager.GenerateTag(claims.FlightID, claims.Price, claims.Expiration.Unix())
	tag[len(tag)-1] ^= 0x01

	ticket, err := service.PurchaseOffer(ctx, claims, tag, domain.Passenger{Email: "ada@example.com"})

	assert.ErrorIs(t, err, tokens.ErrInvalidSignature)
	assert.Nil(t, ticket)
	// The ticketing backend must never see an unverified offer.
	mockBackends.AssertNotCalled(t, "IssueTicket", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaleService_PurchaseOffer_RepricedClaims(t *testing.T) {
	mockBackends := &MockBackends{}
	manager := tokens.NewTagManager([]byte("secret"))
	service := NewSaleService(mockBackends, manager)

	ctx := context.Background()
	expiration := time.Unix(time.Now().Add(10*time.Minute).Unix(), 0)
	tag := manager.GenerateTag("F1", usd(120), expiration.Unix())

	// Client lowers the price but echoes the genuine tag.
	claims := domain.OfferClaims{FlightID: "F1", Price: usd(12), Expiration: expiration}

	_, err := service.PurchaseOffer(ctx, claims, tag, domain.Passenger{Email: "ada@example.com"})

	assert.ErrorIs(t, err, tokens.ErrInvalidSignature)
	mockBackends.AssertNotCalled(t, "IssueTicket", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaleService_PurchaseOffer_Expired(t *testing.T) {
	mockBackends := &MockBackends{}
	manager := tokens.NewTagManager([]byte("secret"))
	service := NewSaleService(mockBackends, manager)

	ctx := context.Background()
	// Sixteen minutes past issuance of a fifteen-minute offer.
	expiration := time.Unix(time.Now().Add(-time.Minute).Unix(), 0)
	claims := domain.OfferClaims{FlightID: "F1", Price: usd(120), Expiration: expiration}
	tag := manager.GenerateTag(claims.FlightID, claims.Price, claims.Expiration.Unix())

	ticket, err := service.PurchaseOffer(ctx, claims, tag, domain.Passenger{Email: "ada@example.com"})

	assert.ErrorIs(t, err, tokens.ErrExpired)
	assert.Nil(t, ticket)
	mockBackends.AssertNotCalled(t, "IssueTicket", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaleService_PurchaseOffer_PublishFailureDoesNotFailPurchase(t *testing.T) {
	mockBackends := &MockBackends{}
	mockProducer := &MockProducer{}
	manager := tokens.NewTagManager([]byte("secret"))
	service := NewSaleService(mockBackends, manager,
		WithNotifications(mockProducer, "sale_notifications"))

	ctx := context.Background()
	claims := domain.OfferClaims{
		FlightID:   "F1",
		Price:      usd(120),
		Expiration: time.Unix(time.Now().Add(10*time.Minute).Unix(), 0),
	}
	tag := manager.GenerateTag(claims.FlightID, claims.Price, claims.Expiration.Unix())
	ticket := &domain.Ticket{ID: "T1", FlightID: "F1"}

	mockBackends.On("IssueTicket", ctx, "F1", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(ticket, nil).Once()
	mockProducer.On("Publish", ctx, "sale_notifications", "T1", mock.Anything).
		Return(errors.New("broker down")).Once()

	got, err := service.PurchaseOffer(ctx, claims, tag, domain.Passenger{})

	require.NoError(t, err)
	assert.Equal(t, ticket, got)
}

// Search-then-purchase round trip: the offer returned by a search must be
// purchasable by echoing its own fields, and must stop verifying once the
// validity window has passed.
func TestSaleService_SearchThenPurchase(t *testing.T) {
	mockBackends := &MockBackends{}
	manager := tokens.NewTagManager([]byte("secret"))
	service := NewSaleService(mockBackends, manager)

	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	passenger := domain.Passenger{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	mockBackends.On("SearchFlights", ctx, "SFO", "JFK", day).
		Return([]domain.Flight{flight("F1")}, nil).Once()
	mockBackends.On("EstimatePrice", mock.Anything, flight("F1")).
		Return(usd(120), nil).Once()

	offers, err := service.SearchOffers(ctx, SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)

	claims := domain.OfferClaims{
		FlightID:   offers[0].Flight.ID,
		Price:      offers[0].Price,
		Expiration: offers[0].Expiration,
	}

	ticket := &domain.Ticket{ID: "T1", FlightID: "F1", Passenger: passenger}
	mockBackends.On("IssueTicket", ctx, "F1", passenger, mock.AnythingOfType("time.Time")).
		Return(ticket, nil).Once()

	got, err := service.PurchaseOffer(ctx, claims, offers[0].Tag, passenger)
	require.NoError(t, err)
	assert.Equal(t, ticket, got)

	// Same offer after the window: signature still genuine, freshness gone.
	stale := NewSaleService(mockBackends, manager, WithOfferValidity(-16*time.Minute))
	mockBackends.On("SearchFlights", ctx, "SFO", "JFK", day).
		Return([]domain.Flight{flight("F1")}, nil).Once()
	mockBackends.On("EstimatePrice", mock.Anything, flight("F1")).
		Return(usd(120), nil).Once()

	staleOffers, err := stale.SearchOffers(ctx, SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	})
	require.NoError(t, err)
	require.Len(t, staleOffers, 1)

	_, err = service.PurchaseOffer(ctx, domain.OfferClaims{
		FlightID:   staleOffers[0].Flight.ID,
		Price:      staleOffers[0].Price,
		Expiration: staleOffers[0].Expiration,
	}, staleOffers[0].Tag, passenger)
	assert.ErrorIs(t, err, tokens.ErrExpired)
}
