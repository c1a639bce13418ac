package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to entities.OrderStatus
		want     bool
	}{
		{entities.StatusProcessing, entities.StatusShipped, true},
		{entities.StatusProcessing, entities.StatusDelivered, true},
		{entities.StatusShipped, entities.StatusOutForDelivery, true},
		{entities.StatusOutForDelivery, entities.StatusShipped, true},
		{entities.StatusShipped, entities.StatusReturnInTransit, true},
		{entities.StatusReturnInTransit, entities.StatusReturned, true},
		{entities.StatusDelivered, entities.StatusDelivered, true},
		{entities.StatusDelivered, entities.StatusProcessing, false},
		{entities.StatusShipped, entities.StatusProcessing, false},
		{entities.StatusCancelled, entities.StatusShipped, false},
		{entities.StatusShipped, entities.StatusCancelled, false},
		{entities.StatusProcessing, entities.OrderStatus("teleported"), false},
		{entities.OrderStatus(""), entities.StatusProcessing, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, entities.CanTransition(tc.from, tc.to))
		})
	}
}

func TestCanTransition_SelfAlwaysAllowed(t *testing.T) {
	for _, s := range entities.AllStatuses() {
		assert.True(t, entities.CanTransition(s, s), s)
	}
}

func TestApplyStatusTransition(t *testing.T) {
	at := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("shipped stamps shipped_at if null", func(t *testing.T) {
		var patch entities.OrderPatch
		require.NoError(t, entities.ApplyStatusTransition(&patch, entities.StatusProcessing, entities.StatusShipped, at))

		assert.Equal(t, entities.StatusShipped, *patch.Status)
		require.NotNil(t, patch.ShippedAtIfNull)
		assert.Equal(t, at, *patch.ShippedAtIfNull)
		assert.Nil(t, patch.DeliveredAtIfNull)
	})

	t.Run("delivered stamps delivered_at if null", func(t *testing.T) {
		var patch entities.OrderPatch
		require.NoError(t, entities.ApplyStatusTransition(&patch, entities.StatusOutForDelivery, entities.StatusDelivered, at))

		assert.Equal(t, entities.StatusDelivered, *patch.Status)
		require.NotNil(t, patch.DeliveredAtIfNull)
		assert.Equal(t, at, *patch.DeliveredAtIfNull)
		assert.Nil(t, patch.ShippedAtIfNull)
	})

	t.Run("other statuses leave timestamps alone", func(t *testing.T) {
		var patch entities.OrderPatch
		require.NoError(t, entities.ApplyStatusTransition(&patch, entities.StatusShipped, entities.StatusOutForDelivery, at))

		assert.Equal(t, entities.StatusOutForDelivery, *patch.Status)
		assert.Nil(t, patch.ShippedAtIfNull)
		assert.Nil(t, patch.DeliveredAtIfNull)
	})

	t.Run("explicit timestamp wins", func(t *testing.T) {
		explicit := at.Add(-48 * time.Hour)
		patch := entities.OrderPatch{ShippedAt: &explicit}
		require.NoError(t, entities.ApplyStatusTransition(&patch, entities.StatusProcessing, entities.StatusShipped, at))

		assert.Nil(t, patch.ShippedAtIfNull)
		assert.Equal(t, explicit, *patch.ShippedAt)
	})

	t.Run("invalid transition", func(t *testing.T) {
		var patch entities.OrderPatch
		err := entities.ApplyStatusTransition(&patch, entities.StatusDelivered, entities.StatusProcessing, at)

		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
		assert.True(t, patch.IsEmpty())
	})
}

func TestForceStatus(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	var patch entities.OrderPatch
	entities.ForceStatus(&patch, entities.StatusDelivered, at)

	assert.Equal(t, entities.StatusDelivered, *patch.Status)
	assert.Equal(t, at, *patch.DeliveredAtIfNull)
	assert.False(t, entities.CanTransition(entities.StatusCancelled, entities.StatusDelivered))
}

func TestAllowedFrom(t *testing.T) {
	assert.ElementsMatch(t, []entities.OrderStatus{
		entities.StatusProcessing,
		entities.StatusReadyToShip,
		entities.StatusShipped,
		entities.StatusOutForDelivery,
	}, entities.AllowedFrom(entities.StatusOutForDelivery))

	assert.ElementsMatch(t, []entities.OrderStatus{
		entities.StatusProcessing,
		entities.StatusReadyToShip,
		entities.StatusCancelled,
	}, entities.AllowedFrom(entities.StatusCancelled))
	assert.Empty(t, entities.AllowedFrom(entities.OrderStatus("teleported")))

	for _, s := range entities.AllStatuses() {
		for _, from := range entities.AllowedFrom(s) {
			assert.True(t, entities.CanTransition(from, s), "%s -> %s", from, s)
		}
	}
}

func TestOrderPatch_IsEmptyIgnoresConditions(t *testing.T) {
	patch := entities.OrderPatch{
		GuardTransition:   true,
		RequireTransition: true,
		KeepPaid:          true,
	}
	assert.True(t, patch.IsEmpty())

	patch.UpdatedAt = entities.Ptr(time.Now())
	assert.False(t, patch.IsEmpty())
}
