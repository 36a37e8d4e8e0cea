package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

// captureLogs swaps the default logger for one writing JSON lines to a buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(orig) })

	return &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))

	return entry
}

func TestLogging(t *testing.T) {
	t.Run("Success - Propagates Request ID And Logger", func(t *testing.T) {
		// Arrange
		buf := captureLogs(t)

		var loggerSeen bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, loggerSeen = r.Context().Value(middleware.LoggerKey).(*slog.Logger)
			middleware.LoggerFromContext(r.Context()).Info("inside handler")
			w.WriteHeader(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(rr, req)

		// Assert
		assert.True(t, loggerSeen)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "req-123", rr.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), `"msg":"inside handler","request_id":"req-123"`)

		entry := lastLine(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "/api/v1/products", entry["path"])
		assert.EqualValues(t, http.StatusCreated, entry["status"])
	})

	t.Run("Success - Generates Request ID", func(t *testing.T) {
		// Arrange
		captureLogs(t)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		_, err := uuid.Parse(rr.Header().Get(middleware.RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("Success - Level Follows Status", func(t *testing.T) {
		tests := []struct {
			status int
			level  string
		}{
			{http.StatusOK, "INFO"},
			{http.StatusNotFound, "WARN"},
			{http.StatusBadGateway, "ERROR"},
		}

		for _, tt := range tests {
			// Arrange
			buf := captureLogs(t)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(tt.status) })

			// Act
			middleware.Logging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			// Assert
			assert.Equal(t, tt.level, lastLine(t, buf)["level"], tt.status)
		}
	})

	t.Run("Success - Trace ID Attached", func(t *testing.T) {
		// Arrange
		buf := captureLogs(t)
		traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
		require.NoError(t, err)
		spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
		require.NoError(t, err)

		sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(trace.ContextWithSpanContext(req.Context(), sc))

		// Act
		middleware.Logging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

		// Assert
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", lastLine(t, buf)["trace_id"])
	})
}

func TestLoggerFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Same(t, slog.Default(), middleware.LoggerFromContext(req.Context()))
}
