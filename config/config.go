// Package config loads the service configuration from environment variables,
// with an optional app.env file for local runs.
package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds everything the process needs at startup. The token secret is
// required and has no default: without it no instance could verify offers
// issued by its peers, so the process refuses to start.
type Config struct {
	GRPCAddress string `mapstructure:"GRPC_ADDRESS"`
	HTTPAddress string `mapstructure:"HTTP_ADDRESS"`

	// Downstream service addresses.
	FlightmngrURL string `mapstructure:"FLIGHTMNGR_URL"`
	PriceestURL   string `mapstructure:"PRICEEST_URL"`
	TicketsrvcURL string `mapstructure:"TICKETSRVC_URL"`

	// TokenSecret signs offer tags. Required, never logged.
	TokenSecret string `mapstructure:"TOKEN_SECRET"`

	// FakePrice bypasses the pricing backend with a fixed amount. Local
	// testing escape hatch only, must stay off in production.
	FakePrice bool `mapstructure:"FAKE_PRICE"`

	KafkaBrokers       []string `mapstructure:"KAFKA_BROKERS"`
	NotificationsTopic string   `mapstructure:"NOTIFICATIONS_TOPIC"`
	KafkaGroupID       string   `mapstructure:"KAFKA_GROUP_ID"`

	SwaggerDir string `mapstructure:"SWAGGER_DIR"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
}

var ErrMissingTokenSecret = errors.New("TOKEN_SECRET is required")

// LoadConfig reads configuration for the serving process. The token secret
// is required here: without it no instance could verify offers issued by its
// peers.
func LoadConfig(path string) (Config, error) {
	config, err := load(path)
	if err != nil {
		return config, err
	}
	if config.TokenSecret == "" {
		return config, ErrMissingTokenSecret
	}
	return config, nil
}

// LoadWorkerConfig reads configuration for the notifications worker, which
// never signs or verifies offers and so runs without the secret.
func LoadWorkerConfig(path string) (Config, error) {
	return load(path)
}

// load reads configuration from environment variables, falling back to an
// app.env file in the given path when present.
func load(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// No default on purpose; bind it so Unmarshal sees the env value.
	_ = viper.BindEnv("TOKEN_SECRET")

	viper.SetDefault("GRPC_ADDRESS", "0.0.0.0:50051")
	viper.SetDefault("HTTP_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("FLIGHTMNGR_URL", "flightmngr:50051")
	viper.SetDefault("PRICEEST_URL", "priceest:50051")
	viper.SetDefault("TICKETSRVC_URL", "ticketsrvc:50051")
	viper.SetDefault("FAKE_PRICE", false)
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("NOTIFICATIONS_TOPIC", "sale_notifications")
	viper.SetDefault("KAFKA_GROUP_ID", "salesvc-notifications")
	viper.SetDefault("SWAGGER_DIR", "")
	viper.SetDefault("LOG_LEVEL", "info")

	if err = viper.ReadInConfig(); err == nil {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else {
		return
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	// Brokers arrive as a comma-separated list in a single variable.
	if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
		config.KafkaBrokers = strings.Split(raw, ",")
	} else {
		config.KafkaBrokers = nil
	}
	return
}
