package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appUser "github.com/artfolio/artfolio/pkg/app/user"
	"github.com/artfolio/artfolio/pkg/handlers/http/request"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type updateUserHandler struct {
	logger  *logrus.Logger
	updater appUser.Updater
}

func NewUpdateUserHandler(logger *logrus.Logger, updater appUser.Updater) Handler {
	return &updateUserHandler{
		logger:  logger,
		updater: updater,
	}
}

// Handle @Summary Update the authenticated user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request.UpdateUserRequest true "Fields to update"
// @Success 200 {object} user.User "Updated user"
// @Router /api/v1/users/me [patch]
func (h *updateUserHandler) Handle(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	entity, err := h.updater.Update(c.UserContext(), userID, appUser.UpdateInput{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		Bio:         req.Bio,
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to update user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update user"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
