package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aaravmahajanofficial/diet-tracker/internal/cache"
	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	repository "github.com/aaravmahajanofficial/diet-tracker/internal/repositories"
	"github.com/aaravmahajanofficial/diet-tracker/pkg/facebook"
	"github.com/golang-jwt/jwt/v5"
)

type AuthService interface {
	LoginWithFacebook(ctx context.Context, req *models.FacebookLoginRequest, clientID string) (*models.LoginResponse, error)
}

type authService struct {
	users    repository.UserRepository
	limiter  repository.RateLimitRepository
	facebook facebook.Client
	cache    cache.Cache
	cfg      *config.Security
	now      func() time.Time
}

func NewAuthService(users repository.UserRepository, limiter repository.RateLimitRepository, fb facebook.Client, c cache.Cache, cfg *config.Security) AuthService {
	return &authService{
		users:    users,
		limiter:  limiter,
		facebook: fb,
		cache:    c,
		cfg:      cfg,
		now:      time.Now,
	}
}

// LoginWithFacebook verifies the access token against the Graph API, creates
// the user on first login and issues a session token. clientID keys the
// login rate limit.
func (s *authService) LoginWithFacebook(ctx context.Context, req *models.FacebookLoginRequest, clientID string) (*models.LoginResponse, error) {

	allowed, _, retryAfter, err := s.limiter.CheckLoginRateLimit(ctx, clientID)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	profile, err := s.facebook.GetProfile(ctx, req.AccessToken)
	if err != nil {
		if errors.Is(err, facebook.ErrInvalidToken) {
			return nil, appErrors.UnauthorizedError("Invalid Facebook access token").WithError(err)
		}

		return nil, appErrors.ThirdPartyError("Failed to verify Facebook access token").WithError(err)
	}

	user, err := s.upsertUser(ctx, profile)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := now.Add(time.Duration(s.cfg.JWTExpiryHours) * time.Hour)

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTKey))
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(expiresAt.Sub(now).Seconds()),
		User:      user,
	}, nil
}

// upsertUser returns the user linked to the Facebook profile, creating it
// on first login. Name, email and picture are refreshed on later logins.
func (s *authService) upsertUser(ctx context.Context, profile *facebook.Profile) (*models.User, error) {

	user, err := s.users.GetUserByFacebookID(ctx, profile.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if user == nil {
		user = &models.User{
			FacebookID: profile.ID,
			Name:       stripTags(profile.Name),
			Email:      profile.Email,
			ImageURL:   profile.Picture.Data.URL,
		}

		if err := s.users.CreateUser(ctx, user); err != nil {
			return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
		}

		return user, nil
	}

	name := stripTags(profile.Name)
	if user.Name == name && user.Email == profile.Email && user.ImageURL == profile.Picture.Data.URL {
		return user, nil
	}

	user.Name = name
	user.Email = profile.Email
	user.ImageURL = profile.Picture.Data.URL

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, appErrors.DatabaseError("Failed to update user").WithError(err)
	}

	invalidate(ctx, s.cache, cache.Key(cache.UserKeyPrefix, user.ID))

	return user, nil
}
