package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api/middleware"
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	service "github.com/aaravmahajanofficial/diet-tracker/internal/services"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils"
	"github.com/aaravmahajanofficial/diet-tracker/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ImageHandler struct {
	imageService service.ImageService
	validator    *validator.Validate
}

func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService, validator: validator.New()}
}

// CreateUpload godoc
//	@Summary		Request an image upload URL
//	@Description	Returns a presigned PUT URL. Upload the image there, then store image_url on a product, meal or profile.
//	@Tags			Images
//	@Accept			json
//	@Produce		json
//	@Param			upload	body		models.ImageUploadRequest	true	"Image content type"
//	@Success		201		{object}	models.ImageUploadResponse	"Upload URL issued"
//	@Failure		400		{object}	response.ErrorResponse		"Unsupported content type"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse		"Image storage not configured"
//	@Failure		502		{object}	response.ErrorResponse		"Object storage unavailable"
//	@Security		BearerAuth
//	@Router			/images [post]
func (h *ImageHandler) CreateUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := middleware.UserIDFromContext(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ImageUploadRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid image upload input")
			return
		}

		upload, err := h.imageService.CreateUpload(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to create image upload", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Image upload issued", slog.String("key", upload.Key))
		response.Success(w, http.StatusCreated, upload)
	}
}
