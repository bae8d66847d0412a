package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appBookmark "github.com/artfolio/artfolio/pkg/app/bookmark"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type toggleBookmarkHandler struct {
	logger  *logrus.Logger
	toggler appBookmark.Toggler
}

func NewToggleBookmarkHandler(logger *logrus.Logger, toggler appBookmark.Toggler) Handler {
	return &toggleBookmarkHandler{
		logger:  logger,
		toggler: toggler,
	}
}

// Handle @Summary Toggle a bookmark on a Work
// @Tags Bookmarks
// @Produce json
// @Param work_id path string true "Work ID"
// @Success 200 {object} map[string]interface{} "Current bookmark state"
// @Router /api/v1/works/{work_id}/bookmark [post]
func (h *toggleBookmarkHandler) Handle(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	workID, err := uuid.Parse(c.Params("work_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid work_id"})
	}

	bookmarked, err := h.toggler.Toggle(c.UserContext(), userID, workID)
	if err != nil {
		h.logger.WithError(err).Error("failed to toggle bookmark")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to toggle bookmark"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"bookmarked": bookmarked})
}
