package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresTokenSecret(t *testing.T) {
	viper.Reset()

	_, err := LoadConfig(t.TempDir())

	assert.ErrorIs(t, err, ErrMissingTokenSecret)
}

func TestLoadWorkerConfig_NoSecretNeeded(t *testing.T) {
	viper.Reset()
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092")

	cfg, err := LoadWorkerConfig(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, cfg.TokenSecret)
	assert.Equal(t, []string{"kafka-1:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "sale_notifications", cfg.NotificationsTopic)
	assert.Equal(t, "salesvc-notifications", cfg.KafkaGroupID)
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("TOKEN_SECRET", "test-secret")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:50051", cfg.GRPCAddress)
	assert.Equal(t, "flightmngr:50051", cfg.FlightmngrURL)
	assert.Equal(t, "priceest:50051", cfg.PriceestURL)
	assert.Equal(t, "ticketsrvc:50051", cfg.TicketsrvcURL)
	assert.Equal(t, "test-secret", cfg.TokenSecret)
	assert.False(t, cfg.FakePrice)
	assert.Nil(t, cfg.KafkaBrokers)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("FAKE_PRICE", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("FLIGHTMNGR_URL", "localhost:50052")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.True(t, cfg.FakePrice)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "localhost:50052", cfg.FlightmngrURL)
}
