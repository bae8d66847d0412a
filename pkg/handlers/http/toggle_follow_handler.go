package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appFollow "github.com/artfolio/artfolio/pkg/app/follow"
	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type toggleFollowHandler struct {
	logger  *logrus.Logger
	toggler appFollow.Toggler
}

func NewToggleFollowHandler(logger *logrus.Logger, toggler appFollow.Toggler) Handler {
	return &toggleFollowHandler{
		logger:  logger,
		toggler: toggler,
	}
}

// Handle @Summary Toggle following a user
// @Tags Follows
// @Produce json
// @Param user_id path string true "Followee ID"
// @Success 200 {object} map[string]interface{} "Current follow state"
// @Failure 400 {object} map[string]interface{} "Self-follow attempt"
// @Router /api/v1/users/{user_id}/follow [post]
func (h *toggleFollowHandler) Handle(c *fiber.Ctx) error {
	followerID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	followeeID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user_id"})
	}

	following, err := h.toggler.Toggle(c.UserContext(), followerID, followeeID)
	if err != nil {
		if errors.Is(err, domain.ErrSelfFollow) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to toggle follow")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to toggle follow"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"following": following})
}
