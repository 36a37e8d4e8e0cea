package service

import (
	"context"
	"errors"
	"fmt"

	appErrors "github.com/aaravmahajanofficial/diet-tracker/internal/errors"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/storage"
	"github.com/google/uuid"
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type ImageService interface {
	CreateUpload(ctx context.Context, userID uuid.UUID, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

type imageService struct {
	storage storage.Storage
}

// NewImageService accepts a nil store; uploads then fail as not configured.
func NewImageService(store storage.Storage) ImageService {
	return &imageService{storage: store}
}

// CreateUpload reserves a fresh object key under the user's prefix and
// returns a presigned PUT for it. The returned image URL is what products
// and meals store once the client has uploaded.
func (s *imageService) CreateUpload(ctx context.Context, userID uuid.UUID, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {

	if s.storage == nil {
		return nil, appErrors.InternalError("Image uploads are not configured").WithError(storage.ErrNotConfigured)
	}

	ext, ok := imageExtensions[req.ContentType]
	if !ok {
		return nil, appErrors.BadRequestError("Unsupported image type").WithDetail(req.ContentType)
	}

	key := fmt.Sprintf("images/%s/%s.%s", userID, uuid.New(), ext)

	upload, err := s.storage.PresignUpload(ctx, key, req.ContentType)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return nil, appErrors.InternalError("Image uploads are not configured").WithError(err)
		}

		return nil, appErrors.ThirdPartyError("Failed to prepare image upload").WithError(err)
	}

	return &models.ImageUploadResponse{
		Key:       upload.Key,
		UploadURL: upload.URL,
		ImageURL:  upload.PublicURL,
		ExpiresIn: int(upload.Expires.Seconds()),
	}, nil
}
