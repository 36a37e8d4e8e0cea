// Package testutils builds requests shaped the way the middleware chain
// leaves them for handlers.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api/middleware"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/google/uuid"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// CreateTestRequestWithContext returns a request authenticated as userID.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	claims := &models.Claims{UserID: userID, Email: "eater@example.com"}

	return newRequest(method, target, body, pathParams, func(ctx context.Context) context.Context {
		return context.WithValue(ctx, middleware.UserContextKey, claims)
	})
}

// CreateTestRequestWithoutContext returns an anonymous request.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return newRequest(method, target, body, pathParams, nil)
}

func newRequest(method, target string, body io.Reader, pathParams map[string]string, decorate func(context.Context) context.Context) *http.Request {
	req := httptest.NewRequest(method, target, body)
	for name, value := range pathParams {
		req.SetPathValue(name, value)
	}

	ctx := context.WithValue(req.Context(), middleware.LoggerKey, discardLogger)
	if decorate != nil {
		ctx = decorate(ctx)
	}

	return req.WithContext(ctx)
}
