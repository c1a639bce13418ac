package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "storefront")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("ADMIN_JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("CARRIER_WEBHOOK_TOKEN", "carrier-token")
	t.Setenv("CARRIER_API_TOKEN", "carrier-api-token")
	t.Setenv("PAYMENT_KEY_ID", "rzp_test_key")
	t.Setenv("PAYMENT_KEY_SECRET", "rzp_test_secret")
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "whsec")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "8080", conf.HTTP.Port)
	assert.False(t, conf.Kafka.Enabled)
	assert.Equal(t, "carrier-status-updates", conf.Kafka.CarrierTopic)
	assert.Equal(t, 1000, conf.Cache.Capacity)
	assert.Equal(t, time.Minute, conf.Cache.TTL)
	assert.Equal(t, 10*time.Second, conf.Carrier.Timeout)
	assert.Empty(t, conf.Tracing.Endpoint)
}

func TestNew_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("POSTGRES_PORT", "not-a-number")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "production", conf.Env)
	assert.Equal(t, "9000", conf.HTTP.Port)
	assert.True(t, conf.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.Equal(t, 5432, conf.Postgres.Port)
}

func TestValidate_MissingSecrets(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_JWT_SECRET", "short")
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "")

	conf := config.New()
	assert.Error(t, conf.Validate())
}

func TestValidate_InvalidEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "qa")

	conf := config.New()
	assert.Error(t, conf.Validate())
}

func TestPostgresValidate(t *testing.T) {
	t.Setenv("POSTGRES_USER", "storefront")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	conf := config.New()
	assert.Error(t, conf.Validate())
	assert.NoError(t, conf.Postgres.Validate())

	conf.Postgres.SSLMode = "sometimes"
	assert.Error(t, conf.Postgres.Validate())
}
