package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appWork "github.com/artfolio/artfolio/pkg/app/work"
	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type deleteWorkHandler struct {
	logger  *logrus.Logger
	deleter appWork.Deleter
}

func NewDeleteWorkHandler(logger *logrus.Logger, deleter appWork.Deleter) Handler {
	return &deleteWorkHandler{
		logger:  logger,
		deleter: deleter,
	}
}

// Handle @Summary Delete a Work
// @Tags Works
// @Param work_id path string true "Work ID"
// @Success 204 "Work deleted"
// @Failure 403 {object} map[string]interface{} "Not the work owner"
// @Failure 404 {object} map[string]interface{} "Work not found"
// @Router /api/v1/works/{work_id} [delete]
func (h *deleteWorkHandler) Handle(c *fiber.Ctx) error {
	requesterID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	workID, err := uuid.Parse(c.Params("work_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid work_id"})
	}

	if err := h.deleter.Delete(c.UserContext(), workID, requesterID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotWorkOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "work not found"})
		default:
			h.logger.WithError(err).Error("failed to delete work")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete work"})
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
