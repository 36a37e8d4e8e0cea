package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	service "github.com/aaravmahajanofficial/diet-tracker/internal/services"
	"github.com/aaravmahajanofficial/diet-tracker/internal/storage"
	storageMocks "github.com/aaravmahajanofficial/diet-tracker/internal/storage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImageService_CreateUpload(t *testing.T) {
	userID := uuid.New()
	keyPattern := regexp.MustCompile(`^images/` + userID.String() + `/[0-9a-f-]{36}\.png$`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStorage := storageMocks.NewStorage(t)
		imageService := service.NewImageService(mockStorage)

		mockStorage.On("PresignUpload", mock.Anything, mock.MatchedBy(keyPattern.MatchString), "image/png").
			Return(func(_ context.Context, key, _ string) (*storage.PresignedUpload, error) {
				return &storage.PresignedUpload{
					URL:       "https://bucket.example.com/" + key + "?X-Amz-Signature=abc",
					Key:       key,
					PublicURL: "https://cdn.example.com/" + key,
					Expires:   15 * time.Minute,
				}, nil
			}).Once()

		// Act
		resp, err := imageService.CreateUpload(t.Context(), userID, &models.ImageUploadRequest{ContentType: "image/png"})

		// Assert
		require.NoError(t, err)
		assert.Regexp(t, keyPattern, resp.Key)
		assert.Equal(t, "https://cdn.example.com/"+resp.Key, resp.ImageURL)
		assert.Contains(t, resp.UploadURL, "X-Amz-Signature")
		assert.Equal(t, 900, resp.ExpiresIn)
	})

	t.Run("Failure - Unsupported Content Type", func(t *testing.T) {
		// Arrange
		mockStorage := storageMocks.NewStorage(t)
		imageService := service.NewImageService(mockStorage)

		// Act
		resp, err := imageService.CreateUpload(t.Context(), userID, &models.ImageUploadRequest{ContentType: "image/gif"})

		// Assert
		assert.Nil(t, resp)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
	})

	t.Run("Failure - Storage Error", func(t *testing.T) {
		// Arrange
		mockStorage := storageMocks.NewStorage(t)
		imageService := service.NewImageService(mockStorage)
		presignErr := errors.New("signing failed")

		mockStorage.On("PresignUpload", mock.Anything, mock.AnythingOfType("string"), "image/jpeg").Return(nil, presignErr).Once()

		// Act
		_, err := imageService.CreateUpload(t.Context(), userID, &models.ImageUploadRequest{ContentType: "image/jpeg"})

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeThirdPartyError))
		assert.ErrorIs(t, err, presignErr)
	})

	t.Run("Failure - Not Configured", func(t *testing.T) {
		// Arrange
		imageService := service.NewImageService(nil)

		// Act
		_, err := imageService.CreateUpload(t.Context(), userID, &models.ImageUploadRequest{ContentType: "image/webp"})

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeInternal))
		assert.ErrorIs(t, err, storage.ErrNotConfigured)
	})
}
