package carrier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/carrier"
	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *carrier.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return carrier.NewClient(config.Carrier{
		BaseURL:  srv.URL,
		APIToken: "token",
		Timeout:  time.Second,
	})
}

func TestClient_TrackByAWB(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/external/courier/track/awb/AWB1", r.URL.Path)
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"tracking_data":{"track_status":1,"etd":"2024-01-12 18:00:00",
				"shipment_track":[{"awb_code":"AWB1","courier_name":"Delhivery","current_status":"Out For Delivery","edd":""}]}}`))
		})

		tracking, err := client.TrackByAWB(context.Background(), "AWB1")
		require.NoError(t, err)
		assert.Equal(t, "AWB1", tracking.AWB)
		assert.Equal(t, "Delhivery", tracking.CourierName)
		assert.Equal(t, "Out For Delivery", tracking.CurrentStatus)
		require.NotNil(t, tracking.ExpectedDelivery)
		assert.True(t, time.Date(2024, 1, 12, 18, 0, 0, 0, time.UTC).Equal(*tracking.ExpectedDelivery))
		assert.NotEmpty(t, tracking.Raw)
	})

	t.Run("no tracking yet", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tracking_data":{"track_status":0,"error":"Awb not found"}}`))
		})

		_, err := client.TrackByAWB(context.Background(), "AWB1")
		assert.ErrorIs(t, err, carrier.ErrShipmentNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.TrackByAWB(context.Background(), "AWB1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, carrier.ErrShipmentNotFound)
	})
}
