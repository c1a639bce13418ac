package postgres_test

import (
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/postgres"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := postgres.DSN(config.Postgres{
		Host:     "db",
		Port:     5433,
		DBName:   "storefront",
		User:     "app",
		Password: "secret",
		SSLMode:  "require",
	})

	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=storefront sslmode=require", dsn)
}
