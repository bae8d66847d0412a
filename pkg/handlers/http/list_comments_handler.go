package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/domain/comment"
)

type listCommentsHandler struct {
	logger *logrus.Logger
	repo   comment.Repository
}

func NewListCommentsHandler(logger *logrus.Logger, repo comment.Repository) Handler {
	return &listCommentsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary List comments on a Work
// @Tags Comments
// @Produce json
// @Param work_id path string true "Work ID"
// @Success 200 {array} comment.Comment "Comments, oldest first"
// @Router /api/v1/works/{work_id}/comments [get]
func (h *listCommentsHandler) Handle(c *fiber.Ctx) error {
	workID, err := uuid.Parse(c.Params("work_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid work_id"})
	}

	comments, err := h.repo.ListByWork(c.UserContext(), workID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list comments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list comments"})
	}
	if comments == nil {
		comments = []comment.Comment{}
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}
