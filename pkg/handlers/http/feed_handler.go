package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appFeed "github.com/artfolio/artfolio/pkg/app/feed"
	"github.com/artfolio/artfolio/pkg/handlers/http/response"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type feedHandler struct {
	logger  *logrus.Logger
	builder appFeed.Builder
}

func NewFeedHandler(logger *logrus.Logger, builder appFeed.Builder) Handler {
	return &feedHandler{
		logger:  logger,
		builder: builder,
	}
}

// Handle @Summary Following feed
// @Description Recent works from followed authors, newest first
// @Tags Feed
// @Produce json
// @Param cursor query string false "RFC3339 cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} response.WorkPageOutput "Page of works"
// @Router /api/v1/feed [get]
func (h *feedHandler) Handle(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	cursor, err := parseCursor(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cursor"})
	}

	page, err := h.builder.FollowingFeed(c.UserContext(), userID, cursor, parseLimit(c))
	if err != nil {
		h.logger.WithError(err).Error("failed to build feed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build feed"})
	}

	return c.Status(fiber.StatusOK).JSON(response.NewWorkPageOutput(page))
}
