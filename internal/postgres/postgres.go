package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrRejected marks connection errors that retrying cannot fix.
var ErrRejected = errors.New("connection rejected by postgres")

func DSN(cfg config.Postgres) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

// New connects to Postgres, retrying while the database is starting up.
func New(ctx context.Context, cfg config.Postgres) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	retry := utils.RetryConfig{
		MaxAttempts:  5,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	}
	ping := func() error { return classify(db.PingContext(ctx)) }
	if err := utils.Retry(ctx, retry, ping, ErrRejected); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}

// classify marks auth failures and a missing database as final, everything
// else (refused connection, server starting up) stays retryable.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	// 28: invalid authorization, 3D000: invalid catalog name
	if pqErr.Code.Class() == "28" || pqErr.Code == "3D000" {
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}
	return err
}
