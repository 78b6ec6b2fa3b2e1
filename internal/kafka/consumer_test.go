package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOfferEvent(t *testing.T) {
	reservation := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(OfferEvent{
		ID:              "E1",
		Type:            "offer_purchased",
		TicketID:        "T1",
		FlightID:        "F1",
		Email:           "ada@example.com",
		CurrencyCode:    "USD",
		PriceUnits:      120,
		ReservationTime: reservation,
	})
	require.NoError(t, err)

	event, ok := decodeOfferEvent(kafka.Message{Value: payload})

	require.True(t, ok)
	assert.Equal(t, "offer_purchased", event.Type)
	assert.Equal(t, "T1", event.TicketID)
	assert.Equal(t, "F1", event.FlightID)
	assert.Equal(t, "ada@example.com", event.Email)
	assert.EqualValues(t, 120, event.PriceUnits)
	assert.True(t, reservation.Equal(event.ReservationTime))
}

func TestDecodeOfferEvent_UndecodableIsSkipped(t *testing.T) {
	_, ok := decodeOfferEvent(kafka.Message{Value: []byte("not json")})

	assert.False(t, ok)
}
