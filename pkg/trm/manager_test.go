package trm_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sqlx.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := sqlx.Connect("sqlite3", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE events (id TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	return db
}

func count(t *testing.T, db *sqlx.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM events`))
	return n
}

func TestManager_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		db := openDB(t)
		m := trm.NewManager(db)

		err := m.Do(ctx, func(ctx context.Context) error {
			require.NotNil(t, trm.ExtractTx(ctx))
			_, err := trm.Executor(ctx, db).ExecContext(ctx, `INSERT INTO events (id) VALUES ('a')`)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count(t, db))
	})

	t.Run("rollback on error", func(t *testing.T) {
		db := openDB(t)
		m := trm.NewManager(db)
		boom := errors.New("boom")

		err := m.Do(ctx, func(ctx context.Context) error {
			if _, err := trm.Executor(ctx, db).ExecContext(ctx, `INSERT INTO events (id) VALUES ('a')`); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, count(t, db))
	})

	t.Run("nested reuses outer transaction", func(t *testing.T) {
		db := openDB(t)
		m := trm.NewManager(db)

		err := m.Do(ctx, func(outer context.Context) error {
			return m.Do(outer, func(inner context.Context) error {
				assert.Same(t, trm.ExtractTx(outer), trm.ExtractTx(inner))
				return nil
			})
		})
		require.NoError(t, err)
	})
}

func TestExecutor_WithoutTx(t *testing.T) {
	db := openDB(t)
	assert.Nil(t, trm.ExtractTx(context.Background()))
	assert.Equal(t, trm.Querier(db), trm.Executor(context.Background(), db))
}
