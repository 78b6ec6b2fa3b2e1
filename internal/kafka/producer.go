package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// OfferEvent is published to the notifications topic after a successful
// purchase and consumed by the notifications worker.
type OfferEvent struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	TicketID        string    `json:"ticket_id"`
	FlightID        string    `json:"flight_id"`
	Email           string    `json:"email"`
	CurrencyCode    string    `json:"currency_code"`
	PriceUnits      int64     `json:"price_units"`
	PriceNanos      int32     `json:"price_nanos"`
	ReservationTime time.Time `json:"reservation_time"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
