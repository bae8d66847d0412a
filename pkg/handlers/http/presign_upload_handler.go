package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/handlers/http/request"
	"github.com/artfolio/artfolio/pkg/infra/storage"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type presignUploadHandler struct {
	logger *logrus.Logger
	media  storage.MediaStore
}

func NewPresignUploadHandler(logger *logrus.Logger, media storage.MediaStore) Handler {
	return &presignUploadHandler{
		logger: logger,
		media:  media,
	}
}

// Handle @Summary Presign a direct media upload
// @Description Issues a short-lived URL for uploading ungated media such as avatars and cover images
// @Tags Storage
// @Accept json
// @Produce json
// @Param request body request.PresignUploadRequest true "Upload target"
// @Success 200 {object} storage.PresignedUpload "Presigned upload"
// @Router /api/v1/uploads/presign [post]
func (h *presignUploadHandler) Handle(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.PresignUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	path := fmt.Sprintf("uploads/%s/%s", userID, req.Filename)
	presigned, err := h.media.PresignUpload(c.UserContext(), path, req.ContentType)
	if err != nil {
		h.logger.WithError(err).Error("failed to presign upload")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to presign upload"})
	}

	return c.Status(fiber.StatusOK).JSON(presigned)
}
