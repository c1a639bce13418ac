package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_PublishStatusChanged(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	change := entities.StatusChange{
		OrderID:     "o1",
		OrderNumber: "ORD1",
		OldStatus:   entities.StatusShipped,
		NewStatus:   entities.StatusDelivered,
		Source:      "webhook",
		ChangedAt:   at,
	}

	t.Run("OK", func(t *testing.T) {
		w := &fakeWriter{}
		pub := events.NewPublisher(logger, w)

		require.NoError(t, pub.PublishStatusChanged(context.Background(), change))
		require.Len(t, w.msgs, 1)
		assert.Equal(t, []byte("o1"), w.msgs[0].Key)

		var ev events.StatusChanged
		require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
		assert.NotEmpty(t, ev.EventID)
		assert.Equal(t, "shipped", ev.OldStatus)
		assert.Equal(t, "delivered", ev.NewStatus)
		assert.True(t, at.Equal(ev.ChangedAt))
	})

	t.Run("writer failure", func(t *testing.T) {
		brokerErr := errors.New("broker down")
		pub := events.NewPublisher(logger, &fakeWriter{err: brokerErr})

		err := pub.PublishStatusChanged(context.Background(), change)
		assert.ErrorIs(t, err, brokerErr)
	})
}
