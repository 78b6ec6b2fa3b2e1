package email

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/gfilippi/salesvc/internal/kafka"
)

// Sender delivers purchase confirmations. Delivery is a log line for now;
// the worker owns when it runs, this type owns what gets sent.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.OfferEvent) error {
	log.Info().
		Str("to", event.Email).
		Str("type", event.Type).
		Str("flight_id", event.FlightID).
		Str("ticket_id", event.TicketID).
		Msg("send purchase confirmation email")
	return nil
}
