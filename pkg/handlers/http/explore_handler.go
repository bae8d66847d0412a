package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appFeed "github.com/artfolio/artfolio/pkg/app/feed"
	"github.com/artfolio/artfolio/pkg/handlers/http/response"
)

type exploreHandler struct {
	logger  *logrus.Logger
	builder appFeed.Builder
}

func NewExploreHandler(logger *logrus.Logger, builder appFeed.Builder) Handler {
	return &exploreHandler{
		logger:  logger,
		builder: builder,
	}
}

// Handle @Summary Explore feed
// @Description Recent works across all authors, newest first
// @Tags Feed
// @Produce json
// @Param cursor query string false "RFC3339 cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} response.WorkPageOutput "Page of works"
// @Router /api/v1/explore [get]
func (h *exploreHandler) Handle(c *fiber.Ctx) error {
	cursor, err := parseCursor(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cursor"})
	}

	page, err := h.builder.ExploreFeed(c.UserContext(), cursor, parseLimit(c))
	if err != nil {
		h.logger.WithError(err).Error("failed to build explore feed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build explore feed"})
	}

	return c.Status(fiber.StatusOK).JSON(response.NewWorkPageOutput(page))
}
