package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appWork "github.com/artfolio/artfolio/pkg/app/work"
	"github.com/artfolio/artfolio/pkg/domain/bookmark"
	"github.com/artfolio/artfolio/pkg/domain/work"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type listBookmarksHandler struct {
	logger *logrus.Logger
	repo   bookmark.Repository
	finder appWork.Finder
}

func NewListBookmarksHandler(logger *logrus.Logger, repo bookmark.Repository, finder appWork.Finder) Handler {
	return &listBookmarksHandler{
		logger: logger,
		repo:   repo,
		finder: finder,
	}
}

// Handle @Summary List the authenticated user's bookmarked works
// @Tags Bookmarks
// @Produce json
// @Success 200 {array} work.Work "Bookmarked works, newest first"
// @Router /api/v1/bookmarks [get]
func (h *listBookmarksHandler) Handle(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	bookmarks, err := h.repo.ListByUser(c.UserContext(), userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list bookmarks")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list bookmarks"})
	}

	// A bookmarked work may have been deleted since; skip the dangling rows.
	works := make([]work.Work, 0, len(bookmarks))
	for _, b := range bookmarks {
		entity, err := h.finder.Find(c.UserContext(), b.WorkID)
		if err != nil {
			continue
		}
		works = append(works, *entity)
	}

	return c.Status(fiber.StatusOK).JSON(works)
}
