package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		HTTP: config.HTTP{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}

type blockingStarter struct{ stopped atomic.Bool }

func (s *blockingStarter) Start(ctx context.Context) error {
	<-ctx.Done()
	s.stopped.Store(true)
	return ctx.Err()
}

type fakeConsumer struct{ closed atomic.Bool }

func (c *fakeConsumer) Consume(ctx context.Context) { <-ctx.Done() }
func (c *fakeConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

func TestApplication_Routes(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	a.SetHTTPHandlers(pingHandler{})

	for path, want := range map[string]int{
		"/ping":    http.StatusOK,
		"/healthz": http.StatusOK,
		"/metrics": http.StatusOK,
		"/missing": http.StatusNotFound,
	} {
		rr := httptest.NewRecorder()
		a.httpSrv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rr.Code, path)
	}
}

func TestApplication_StartStop(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	starter := &blockingStarter{}
	consumer := &fakeConsumer{}
	a.SetStarters(starter)
	a.SetConsumers(consumer)

	require.NoError(t, a.Start(context.Background()))
	require.NoError(t, a.Stop())

	assert.True(t, starter.stopped.Load())
	assert.True(t, consumer.closed.Load())
}
