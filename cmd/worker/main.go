// The notifications worker consumes purchase events and triggers the email
// sender. It runs as a separate process so a broker hiccup never touches the
// request path.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gfilippi/salesvc/config"
	"github.com/gfilippi/salesvc/internal/email"
	"github.com/gfilippi/salesvc/internal/kafka"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadWorkerConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal().Msg("KAFKA_BROKERS is required for the notifications worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, cfg.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender()

	log.Info().
		Str("topic", cfg.NotificationsTopic).
		Str("group_id", cfg.KafkaGroupID).
		Msg("notifications worker started")

	if err := consumer.Consume(ctx, sender.Send); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("consumer stopped")
	}
}
