package sale_service_api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/type/money"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/gfilippi/salesvc/internal/domain"
	"github.com/gfilippi/salesvc/internal/pb/salesvc"
	"github.com/gfilippi/salesvc/internal/pb/ticketsrvc"
	"github.com/gfilippi/salesvc/internal/service/sale"
	"github.com/gfilippi/salesvc/internal/tokens"
)

type MockSaleUseCase struct {
	mock.Mock
}

func (m *MockSaleUseCase) SearchOffers(ctx context.Context, input sale.SearchOffersInput) ([]domain.Offer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockSaleUseCase) PurchaseOffer(ctx context.Context, claims domain.OfferClaims, tag []byte, passenger domain.Passenger) (*domain.Ticket, error) {
	args := m.Called(ctx, claims, tag, passenger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func validPurchaseRequest() *salesvc.PurchaseOfferRequest {
	return &salesvc.PurchaseOfferRequest{
		Offer: &salesvc.OfferClaims{
			FlightId:   "F1",
			Price:      &money.Money{CurrencyCode: "USD", Units: 120},
			Expiration: timestamppb.New(time.Now().Add(10 * time.Minute)),
		},
		Tag: []byte{0xde, 0xad, 0xbe, 0xef},
		Data: &ticketsrvc.PassengerDetails{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
	}
}

func TestServer_PurchaseOffer_MalformedRequests(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*salesvc.PurchaseOfferRequest)
	}{
		{"missing offer", func(r *salesvc.PurchaseOfferRequest) { r.Offer = nil }},
		{"missing passenger data", func(r *salesvc.PurchaseOfferRequest) { r.Data = nil }},
		{"missing price", func(r *salesvc.PurchaseOfferRequest) { r.Offer.Price = nil }},
		{"missing expiration", func(r *salesvc.PurchaseOfferRequest) { r.Offer.Expiration = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSale := &MockSaleUseCase{}
			server := NewServer(mockSale)

			req := validPurchaseRequest()
			tc.mutate(req)

			_, err := server.PurchaseOffer(context.Background(), req)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
			// Rejected before any work reaches the orchestrator.
			mockSale.AssertNotCalled(t, "PurchaseOffer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestServer_PurchaseOffer_Success(t *testing.T) {
	mockSale := &MockSaleUseCase{}
	server := NewServer(mockSale)

	req := validPurchaseRequest()
	reservation := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	passenger := domain.Passenger{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	mockSale.On("PurchaseOffer", mock.Anything, mock.AnythingOfType("domain.OfferClaims"), req.GetTag(), passenger).
		Return(&domain.Ticket{
			ID:              "T1",
			FlightID:        "F1",
			Passenger:       passenger,
			ReservationTime: reservation,
		}, nil).Once()

	resp, err := server.PurchaseOffer(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.GetTicket())
	assert.Equal(t, "T1", resp.GetTicket().GetId())
	assert.Equal(t, "F1", resp.GetTicket().GetFlightId())
	assert.Equal(t, "ada@example.com", resp.GetTicket().GetPassenger().GetEmail())
	assert.True(t, reservation.Equal(resp.GetTicket().GetReservationTime().AsTime()))
	mockSale.AssertExpectations(t)
}

func TestServer_PurchaseOffer_InvalidOfferMapsToInvalidArgument(t *testing.T) {
	mockSale := &MockSaleUseCase{}
	server := NewServer(mockSale)

	mockSale.On("PurchaseOffer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, tokens.ErrInvalidSignature).Once()

	_, err := server.PurchaseOffer(context.Background(), validPurchaseRequest())

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "offer is invalid", st.Message())
}

func TestServer_SearchOffers_MissingDate(t *testing.T) {
	mockSale := &MockSaleUseCase{}
	server := NewServer(mockSale)

	_, err := server.SearchOffers(context.Background(), &salesvc.SearchOffersRequest{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
	})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	mockSale.AssertNotCalled(t, "SearchOffers", mock.Anything, mock.Anything)
}

func TestServer_SearchOffers_Success(t *testing.T) {
	mockSale := &MockSaleUseCase{}
	server := NewServer(mockSale)

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expiration := time.Unix(time.Now().Add(15*time.Minute).Unix(), 0)
	offer := domain.Offer{
		Flight: domain.Flight{
			ID:            "F1",
			OriginID:      "SFO",
			DestinationID: "JFK",
			DepartureTime: day.Add(9 * time.Hour),
			ArrivalTime:   day.Add(17 * time.Hour),
		},
		Price:      &money.Money{CurrencyCode: "USD", Units: 120},
		Expiration: expiration,
		Tag:        []byte{0x01, 0x02},
	}

	mockSale.On("SearchOffers", mock.Anything, sale.SearchOffersInput{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    day,
	}).Return([]domain.Offer{offer}, nil).Once()

	resp, err := server.SearchOffers(context.Background(), &salesvc.SearchOffersRequest{
		DepartureAirport: "SFO",
		ArrivalAirport:   "JFK",
		DepartureDate:    timestamppb.New(day),
	})

	require.NoError(t, err)
	require.Len(t, resp.GetOffers(), 1)
	got := resp.GetOffers()[0]
	assert.Equal(t, "F1", got.GetFlight().GetId())
	assert.Equal(t, int64(120), got.GetPrice().GetUnits())
	assert.True(t, expiration.Equal(got.GetExpiration().AsTime()))
	assert.Equal(t, offer.Tag, got.GetTag())
	mockSale.AssertExpectations(t)
}
