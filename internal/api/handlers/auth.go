package handlers

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api/middleware"
	"github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	service "github.com/aaravmahajanofficial/diet-tracker/internal/services"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

// FacebookLogin godoc
//	@Summary		Log in with Facebook
//	@Description	Exchanges a Facebook user access token for a bearer token. The user is created on first login.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			login	body		models.FacebookLoginRequest	true	"Facebook access token"
//	@Success		200		{object}	models.LoginResponse		"Logged in"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Facebook rejected the token"
//	@Failure		429		{object}	response.ErrorResponse		"Too many login attempts"
//	@Failure		502		{object}	response.ErrorResponse		"Facebook or rate limiter unavailable"
//	@Router			/auth/facebook [post]
func (h *AuthHandler) FacebookLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.FacebookLoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		clientID := clientIP(r)
		logger = logger.With(slog.String("clientIP", clientID))

		resp, err := h.authService.LoginWithFacebook(r.Context(), &req, clientID)
		if err != nil {
			logger.Warn("Facebook login failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			logger.Warn("Login rate limited", slog.Int("retryAfter", resp.RetryAfter))
			w.Header().Set("Retry-After", strconv.Itoa(resp.RetryAfter))
			response.Error(w, errors.TooManyRequestsError(resp.Message).WithDetail(fmt.Sprintf("retry after %d seconds", resp.RetryAfter)))
			return
		}

		if resp.User != nil {
			logger.Info("User logged in", slog.String("userID", resp.User.ID.String()))
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// clientIP keys the login rate limit: the first X-Forwarded-For hop when set
// by the proxy, the peer address otherwise.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
