package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/artfolio/artfolio/pkg/domain/detection"
)

// detectionErrorResponse maps detector faults to transport responses. A
// missing credential or unsupported modality is the operator's problem, not
// the caller's, so both surface as 503 alongside transport failures.
func detectionErrorResponse(c *fiber.Ctx, err error) error {
	var capability *detection.CapabilityError
	if errors.As(err, &capability) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": capability.Error(),
		})
	}

	var configuration *detection.ConfigurationError
	if errors.As(err, &configuration) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "detection is not configured for this content type",
		})
	}

	if errors.Is(err, detection.ErrContentTypeMismatch) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "could not verify content right now",
	})
}
