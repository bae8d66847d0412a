package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/domain/thread"
)

type listThreadsHandler struct {
	logger *logrus.Logger
	repo   thread.Repository
}

func NewListThreadsHandler(logger *logrus.Logger, repo thread.Repository) Handler {
	return &listThreadsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary List topic threads
// @Tags Threads
// @Produce json
// @Success 200 {array} thread.Thread "Threads"
// @Router /api/v1/threads [get]
func (h *listThreadsHandler) Handle(c *fiber.Ctx) error {
	threads, err := h.repo.List(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("failed to list threads")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list threads"})
	}
	if threads == nil {
		threads = []thread.Thread{}
	}

	return c.Status(fiber.StatusOK).JSON(threads)
}
