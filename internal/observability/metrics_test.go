package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", http.MethodGet, 200, time.Millisecond)
	m.RecordError("/", http.MethodGet, "X")
	m.RecordRegistration("user")
}

func TestMetrics_RecordError(t *testing.T) {
	m := NewMetrics("svc")
	m.RecordError("/User/save", http.MethodPost, "CONSTRAINT_VIOLATION")

	expected := `
# HELP svc_http_errors_total Failed HTTP requests by error code.
# TYPE svc_http_errors_total counter
svc_http_errors_total{code="CONSTRAINT_VIOLATION",method="POST",path="/User/save"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "svc_http_errors_total"))
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	m := NewMetrics("svc")
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/User/:id", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("request_id").(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/User/7", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/User/8", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestCount.WithLabelValues("/User/:id", http.MethodGet, "200")))
}
