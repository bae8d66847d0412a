package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appDetection "github.com/artfolio/artfolio/pkg/app/detection"
	"github.com/artfolio/artfolio/pkg/handlers/http/request"
	"github.com/artfolio/artfolio/pkg/handlers/http/response"
)

type detectTextHandler struct {
	logger  *logrus.Logger
	service appDetection.Service
}

func NewDetectTextHandler(logger *logrus.Logger, service appDetection.Service) Handler {
	return &detectTextHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Check a text for AI generation
// @Description Runs the text through the AI-content detector without publishing anything
// @Tags Detection
// @Accept json
// @Produce json
// @Param request body request.DetectTextRequest true "Text to check"
// @Success 200 {object} response.DetectionOutput "Detection verdict"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 503 {object} map[string]interface{} "Detector unavailable"
// @Router /api/v1/detection/text [post]
func (h *detectTextHandler) Handle(c *fiber.Ctx) error {
	var req request.DetectTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.DetectText(c.UserContext(), req.Text)
	if err != nil {
		h.logger.WithError(err).Error("text detection failed")
		return detectionErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(response.NewDetectionOutput(result))
}
