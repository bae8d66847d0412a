package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appWork "github.com/artfolio/artfolio/pkg/app/work"
)

type getWorkHandler struct {
	logger *logrus.Logger
	finder appWork.Finder
}

func NewGetWorkHandler(logger *logrus.Logger, finder appWork.Finder) Handler {
	return &getWorkHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve a Work by ID
// @Tags Works
// @Produce json
// @Param work_id path string true "Work ID"
// @Success 200 {object} work.Work "Work"
// @Failure 404 {object} map[string]interface{} "Work not found"
// @Router /api/v1/works/{work_id} [get]
func (h *getWorkHandler) Handle(c *fiber.Ctx) error {
	workID, err := uuid.Parse(c.Params("work_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid work_id"})
	}

	entity, err := h.finder.Find(c.UserContext(), workID)
	if err != nil {
		h.logger.WithError(err).WithField("work_id", workID).Debug("work not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "work not found"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
