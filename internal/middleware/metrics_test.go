package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if out.Counter != nil {
		return out.Counter.GetValue()
	}
	return out.Gauge.GetValue()
}

func TestSurface(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{"/api/webhooks/shipment", SurfaceCarrier},
		{"/api/payments/webhook", SurfacePayments},
		{"/api/payments/intent", SurfacePayments},
		{"/api/admin/orders/42/ship", SurfaceAdmin},
		{"/healthz", SurfaceSystem},
		{"/api/adminx", SurfaceSystem},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, Surface(tc.path))
		})
	}
}

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/api/webhooks/shipment", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.Get("/api/admin/orders/{id}", func(w http.ResponseWriter, r *http.Request) {})

	ok := httpRequestsTotal.WithLabelValues(SurfaceAdmin, http.MethodGet, "/api/admin/orders/{id}", "200")
	denied := httpRequestsTotal.WithLabelValues(SurfaceCarrier, http.MethodPost, "/api/webhooks/shipment", "401")
	rejected := httpRejectedTotal.WithLabelValues(SurfaceCarrier, "401")
	okBefore, deniedBefore, rejectedBefore := value(t, ok), value(t, denied), value(t, rejected)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/admin/orders/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/admin/orders/43", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/webhooks/shipment", nil))

	assert.Equal(t, okBefore+2, value(t, ok))
	assert.Equal(t, deniedBefore+1, value(t, denied))
	assert.Equal(t, rejectedBefore+1, value(t, rejected))
	assert.Equal(t, float64(0), value(t, httpInFlight.WithLabelValues(SurfaceCarrier)))
}
