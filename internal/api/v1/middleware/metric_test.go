package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Behyna/payout-services/internal/api/v1/middleware"
	"github.com/Behyna/payout-services/internal/constants"
	errmiddleware "github.com/Behyna/payout-services/internal/error"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubChecker struct {
	err error
}

func (s stubChecker) HealthCheck(context.Context) error {
	return s.err
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	app := fiber.New(fiber.Config{ErrorHandler: errmiddleware.ErrorHandler(zap.NewNop())})
	app.Use(middleware.HTTPMetricsMiddleware(m, zap.NewNop()))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error {
		return service.NewServiceError(constants.ErrCodeBatchNotFound, service.ErrBatchNotFound)
	})

	for _, path := range []string{"/ok", "/ok", "/missing"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/missing", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.HTTPRequestsInFlight))
}

func TestHealthCheckMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		checker        stubChecker
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "database reachable",
			checker:        stubChecker{},
			expectedStatus: http.StatusOK,
			expectedState:  "healthy",
		},
		{
			name:           "database down",
			checker:        stubChecker{err: errors.New("connection refused")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(middleware.HealthCheckMiddleware("payout-api", tt.checker))
			app.Get("/other", func(c *fiber.Ctx) error { return c.SendString("passed through") })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedState, body["status"])
			assert.Equal(t, "payout-api", body["service"])

			other, err := app.Test(httptest.NewRequest(http.MethodGet, "/other", nil))
			require.NoError(t, err)
			other.Body.Close()
			assert.Equal(t, http.StatusOK, other.StatusCode)
		})
	}
}
