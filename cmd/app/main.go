package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gfilippi/salesvc/config"
	"github.com/gfilippi/salesvc/internal/backends"
	"github.com/gfilippi/salesvc/internal/bootstrap"
	"github.com/gfilippi/salesvc/internal/kafka"
	"github.com/gfilippi/salesvc/internal/service/sale"
	"github.com/gfilippi/salesvc/internal/tokens"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setLogLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var gatewayOpts []backends.Option
	if cfg.FakePrice {
		gatewayOpts = append(gatewayOpts, backends.WithFakePrice())
	}

	gateway, err := backends.Dial(cfg.FlightmngrURL, cfg.PriceestURL, cfg.TicketsrvcURL, gatewayOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("dial backends")
	}

	tagManager := tokens.NewTagManager([]byte(cfg.TokenSecret))

	var saleOpts []sale.SaleServiceOption
	if len(cfg.KafkaBrokers) > 0 && cfg.NotificationsTopic != "" {
		producer := kafka.NewProducer(cfg.KafkaBrokers)
		defer producer.Close()
		saleOpts = append(saleOpts, sale.WithNotifications(producer, cfg.NotificationsTopic))
	}

	saleService := sale.NewSaleService(gateway, tagManager, saleOpts...)

	if err := bootstrap.Run(ctx, cfg, saleService); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
