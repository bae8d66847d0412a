package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appUser "github.com/artfolio/artfolio/pkg/app/user"
)

type getUserHandler struct {
	logger *logrus.Logger
	finder appUser.Finder
}

func NewGetUserHandler(logger *logrus.Logger, finder appUser.Finder) Handler {
	return &getUserHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve a user profile by username
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} user.Profile "Profile with follow counts"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/v1/users/{username} [get]
func (h *getUserHandler) Handle(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username is required"})
	}

	profile, err := h.finder.FindByUsername(c.UserContext(), username)
	if err != nil {
		h.logger.WithError(err).WithField("username", username).Debug("user not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}
