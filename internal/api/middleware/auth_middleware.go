package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const UserContextKey = contextKey("user")

const bearerPrefix = "Bearer "

// AuthMiddleware admits requests carrying an unexpired HS256 token signed
// with jwtKey.
type AuthMiddleware struct {
	jwtKey []byte
	parser *jwt.Parser
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{
		jwtKey: jwtKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		raw, appErr := bearerToken(r.Header.Get("Authorization"))
		if appErr != nil {
			logger.Warn("Rejected authorization header", slog.String("reason", appErr.Message))
			response.Error(w, appErr)
			return
		}

		claims, appErr := m.verify(raw)
		if appErr != nil {
			logger.Warn("Rejected token", slog.Any("error", appErr))
			response.Error(w, appErr)
			return
		}

		userLogger := logger.With(slog.String("userId", claims.UserID.String()))
		userLogger.Debug("User authenticated")

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		ctx = context.WithValue(ctx, LoggerKey, userLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func bearerToken(header string) (string, *errors.AppError) {
	if header == "" {
		return "", errors.UnauthorizedError("Authorization header is required")
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return "", errors.UnauthorizedError("Invalid authorization format")
	}

	return token, nil
}

func (m *AuthMiddleware) verify(raw string) (*models.Claims, *errors.AppError) {
	claims := &models.Claims{}

	token, err := m.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.jwtKey, nil
	})
	if err != nil {
		return nil, errors.UnauthorizedError("Invalid or expired token").WithError(err)
	}

	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errors.UnauthorizedError("Invalid token")
	}

	return claims, nil
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	if !ok || claims == nil {
		return nil, false
	}

	return claims, true
}

// UserIDFromContext returns the authenticated user id or an
// UnauthorizedError when the request carries no claims.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return uuid.Nil, errors.UnauthorizedError("Unauthorized access")
	}

	return claims.UserID, nil
}
