package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appDetection "github.com/artfolio/artfolio/pkg/app/detection"
	"github.com/artfolio/artfolio/pkg/handlers/http/response"
)

// maxInlineImageSize bounds how much image data the detector endpoint will
// buffer per request.
const maxInlineImageSize = 20 << 20

type detectImageHandler struct {
	logger  *logrus.Logger
	service appDetection.Service
}

func NewDetectImageHandler(logger *logrus.Logger, service appDetection.Service) Handler {
	return &detectImageHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Check an image for AI generation
// @Description Runs the uploaded image through the AI-content detector without publishing anything
// @Tags Detection
// @Accept mpfd
// @Produce json
// @Param media formData file true "Image to check"
// @Success 200 {object} response.DetectionOutput "Detection verdict"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 503 {object} map[string]interface{} "Detector unavailable"
// @Router /api/v1/detection/image [post]
func (h *detectImageHandler) Handle(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("media")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "media file is required"})
	}
	if fileHeader.Size > maxInlineImageSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "media file is too large"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to read media file"})
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to read media file"})
	}

	result, err := h.service.DetectImage(c.UserContext(), imageBytes, fileHeader.Filename)
	if err != nil {
		h.logger.WithError(err).Error("image detection failed")
		return detectionErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(response.NewDetectionOutput(result))
}
