package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	HTTP HTTP   `validate:"required"`

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Admin   Admin   `validate:"required"`
	Carrier Carrier `validate:"required"`
	Payment Payment `validate:"required"`

	Tracing Tracing
}

type HTTP struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`

	ReadTimeout  time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`

	// входящие статусы перевозчика, которые пересылает интеграционный сервис
	CarrierTopic string `validate:"required_if=Enabled true"`
	// исходящие события смены статуса заказа
	StatusTopic string `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=0"`
	TTL      time.Duration `validate:"gte=0"`
}

type Admin struct {
	JWTSecret string `validate:"required,min=16"`
}

type Carrier struct {
	WebhookToken string        `validate:"required"`
	BaseURL      string        `validate:"required,url"`
	APIToken     string        `validate:"required"`
	Timeout      time.Duration `validate:"gt=0"`
}

type Payment struct {
	KeyID         string        `validate:"required"`
	KeySecret     string        `validate:"required"`
	WebhookSecret string        `validate:"required"`
	BaseURL       string        `validate:"required,url"`
	Timeout       time.Duration `validate:"gt=0"`
}

type Tracing struct {
	// пустой endpoint выключает экспорт
	Endpoint    string
	ServiceName string  `validate:"required"`
	SampleRate  float64 `validate:"gte=0,lte=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		HTTP: HTTP{
			Host:         env("HOST", "localhost"),
			Port:         env("PORT", "8080"),
			ReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled:      envBool("KAFKA_ENABLED", false),
			GroupID:      env("KAFKA_GROUP_ID", "storefront-orders"),
			Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			CarrierTopic: env("KAFKA_CARRIER_TOPIC", "carrier-status-updates"),
			StatusTopic:  env("KAFKA_STATUS_TOPIC", "order-status-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Admin: Admin{
			JWTSecret: env("ADMIN_JWT_SECRET", ""),
		},

		Carrier: Carrier{
			WebhookToken: env("CARRIER_WEBHOOK_TOKEN", ""),
			BaseURL:      env("CARRIER_API_URL", "https://apiv2.shiprocket.in"),
			APIToken:     env("CARRIER_API_TOKEN", ""),
			Timeout:      envDuration("CARRIER_API_TIMEOUT", 10*time.Second),
		},

		Payment: Payment{
			KeyID:         env("PAYMENT_KEY_ID", ""),
			KeySecret:     env("PAYMENT_KEY_SECRET", ""),
			WebhookSecret: env("PAYMENT_WEBHOOK_SECRET", ""),
			BaseURL:       env("PAYMENT_API_URL", "https://api.razorpay.com"),
			Timeout:       envDuration("PAYMENT_API_TIMEOUT", 10*time.Second),
		},

		Tracing: Tracing{
			Endpoint:    env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: env("OTEL_SERVICE_NAME", "storefront-orders"),
			SampleRate:  envFloat("OTEL_SAMPLE_RATE", 1),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Validate checks only the database settings, for tools that need nothing else.
func (p Postgres) Validate() error {
	return validator.New().Struct(p)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
