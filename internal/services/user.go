package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/diet-tracker/internal/cache"
	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/nutrition"
	repository "github.com/aaravmahajanofficial/diet-tracker/internal/repositories"
	"github.com/google/uuid"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)
	UpdateBiometrics(ctx context.Context, userID uuid.UUID, req *models.UpdateBiometricsRequest) (*models.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

func NewUserService(repo repository.UserRepository, cache cache.Cache) UserService {
	return &userService{
		repo:  repo,
		cache: cache,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {

	return cache.GetOrLoad(ctx, s.cache, cache.Key(cache.UserKeyPrefix, userID), 0, func(ctx context.Context) (*models.User, error) {
		return s.loadUser(ctx, userID)
	})
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = stripTags(*req.Name)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.ImageURL != nil {
		user.ImageURL = *req.ImageURL
	}

	return s.save(ctx, user, "Failed to update profile")
}

// UpdateBiometrics replaces the biometrics of the user and recomputes the
// daily targets from them.
func (s *userService) UpdateBiometrics(ctx context.Context, userID uuid.UUID, req *models.UpdateBiometricsRequest) (*models.User, error) {

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Biometrics = models.Biometrics{
		Age:           req.Age,
		Height:        req.Height,
		Weight:        req.Weight,
		Sex:           req.Sex,
		ActivityLevel: req.ActivityLevel,
	}
	user.DailyTargets = nutrition.DailyTargetsFor(user.Biometrics)

	return s.save(ctx, user, "Failed to update biometrics")
}

func (s *userService) loadUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

func (s *userService) save(ctx context.Context, user *models.User, failure string) (*models.User, error) {

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, appErrors.DatabaseError(failure).WithError(err)
	}

	invalidate(ctx, s.cache, cache.Key(cache.UserKeyPrefix, user.ID))

	return user, nil
}
