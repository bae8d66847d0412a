package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appComment "github.com/artfolio/artfolio/pkg/app/comment"
	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/handlers/http/request"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type createCommentHandler struct {
	logger  *logrus.Logger
	creator appComment.Creator
}

func NewCreateCommentHandler(logger *logrus.Logger, creator appComment.Creator) Handler {
	return &createCommentHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Comment on a Work
// @Tags Comments
// @Accept json
// @Produce json
// @Param work_id path string true "Work ID"
// @Param request body request.CreateCommentRequest true "Comment body"
// @Success 201 {object} comment.Comment "Comment created"
// @Failure 404 {object} map[string]interface{} "Work not found"
// @Router /api/v1/works/{work_id}/comments [post]
func (h *createCommentHandler) Handle(c *fiber.Ctx) error {
	authorID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	workID, err := uuid.Parse(c.Params("work_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid work_id"})
	}

	var req request.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.creator.Create(c.UserContext(), workID, authorID, req.Body)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "work not found"})
		}
		h.logger.WithError(err).Error("failed to create comment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create comment"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
