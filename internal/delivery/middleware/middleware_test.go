package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	return e
}

func get(e *echo.Echo, path, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{}, false)

	rec := get(e, "/ok", "trace-abc.1")
	assert.Equal(t, "trace-abc.1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "trace-abc.1", rec.Body.String())

	rec = get(e, "/ok", "")
	_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
	require.NoError(t, err)

	rec = get(e, "/ok", "bad id\nwith newline")
	_, err = uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
	require.NoError(t, err)

	rec = get(e, "/ok", strings.Repeat("a", 129))
	assert.NotEqual(t, strings.Repeat("a", 129), rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	e := newTestEcho(buf, false)

	get(e, "/ok", "")
	assert.Empty(t, buf.String())

	rec := get(e, "/boom", "req-5")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"request_id":"req-5"`)
}

func TestLoggerMiddleware_DebugSkipsHealth(t *testing.T) {
	buf := &bytes.Buffer{}
	e := newTestEcho(buf, true)

	get(e, "/health", "")
	assert.Empty(t, buf.String())

	get(e, "/ok", "")
	assert.Contains(t, buf.String(), `"uri":"/ok"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}
