package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appWork "github.com/artfolio/artfolio/pkg/app/work"
	"github.com/artfolio/artfolio/pkg/handlers/http/response"
)

type listWorksHandler struct {
	logger *logrus.Logger
	finder appWork.Finder
}

func NewListWorksHandler(logger *logrus.Logger, finder appWork.Finder) Handler {
	return &listWorksHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List a user's published works
// @Tags Works
// @Produce json
// @Param user_id path string true "Author ID"
// @Param cursor query string false "RFC3339 cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} response.WorkPageOutput "Page of works"
// @Router /api/v1/users/{user_id}/works [get]
func (h *listWorksHandler) Handle(c *fiber.Ctx) error {
	authorID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user_id"})
	}

	cursor, err := parseCursor(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cursor"})
	}

	page, err := h.finder.ListByAuthor(c.UserContext(), authorID, cursor, parseLimit(c))
	if err != nil {
		h.logger.WithError(err).Error("failed to list works")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list works"})
	}

	return c.Status(fiber.StatusOK).JSON(response.NewWorkPageOutput(page))
}
