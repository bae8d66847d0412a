package http

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appWork "github.com/artfolio/artfolio/pkg/app/work"
	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/domain/work"
	"github.com/artfolio/artfolio/pkg/handlers/http/request"
	"github.com/artfolio/artfolio/pkg/handlers/http/response"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type publishWorkHandler struct {
	logger    *logrus.Logger
	publisher appWork.Publisher
}

func NewPublishWorkHandler(logger *logrus.Logger, publisher appWork.Publisher) Handler {
	return &publishWorkHandler{
		logger:    logger,
		publisher: publisher,
	}
}

// Handle @Summary Publish a work
// @Description Runs the AI-content gate and persists the work on a pass. Image works are multipart, written works are JSON.
// @Tags Works
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 201 {object} work.Work "Published work"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 422 {object} map[string]interface{} "Content rejected by the gate"
// @Failure 503 {object} map[string]interface{} "Could not verify content"
// @Router /api/v1/works [post]
func (h *publishWorkHandler) Handle(c *fiber.Ctx) error {
	authorID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var (
		input *appWork.PublishInput
		err   error
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		input, err = h.parseMultipart(c)
	} else {
		input, err = h.parseJSON(c)
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	input.AuthorID = authorID

	entity, result, err := h.publisher.Publish(c.UserContext(), *input)
	if err != nil {
		return h.publishErrorResponse(c, result, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"work":      entity,
		"detection": response.NewDetectionOutput(result),
	})
}

func (h *publishWorkHandler) publishErrorResponse(c *fiber.Ctx, result *detection.Result, err error) error {
	var rejected *detection.ContentRejectedError
	if errors.As(err, &rejected) {
		// An expected verdict, not a fault. The caller gets the score so the
		// UI can show how confident the detector was.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":     rejected.Error(),
			"detection": response.NewDetectionOutput(rejected.Result),
		})
	}

	if errors.Is(err, appWork.ErrDetectionUnavailable) {
		h.logger.WithError(err).Error("publish aborted, detector unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": appWork.ErrDetectionUnavailable.Error(),
		})
	}

	if errors.Is(err, domain.ErrInvalidWorkType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithError(err).Error("failed to publish work")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to publish work"})
}

func (h *publishWorkHandler) parseJSON(c *fiber.Ctx) (*appWork.PublishInput, error) {
	var req request.PublishWorkRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	threadIDs, primaryThreadID, err := parseThreadIDs(req.ThreadIDs, req.PrimaryThreadID)
	if err != nil {
		return nil, err
	}

	return &appWork.PublishInput{
		WorkType:        work.Type(req.WorkType),
		Title:           req.Title,
		Content:         req.Content,
		Description:     req.Description,
		Width:           req.Width,
		Height:          req.Height,
		CoverImageURL:   req.CoverImageURL,
		CoverImagePath:  req.CoverImagePath,
		ThreadIDs:       threadIDs,
		PrimaryThreadID: primaryThreadID,
	}, nil
}

func (h *publishWorkHandler) parseMultipart(c *fiber.Ctx) (*appWork.PublishInput, error) {
	fileHeader, err := c.FormFile("media")
	if err != nil {
		return nil, errors.New("media file is required for image works")
	}
	if fileHeader.Size > maxInlineImageSize {
		return nil, errors.New("media file is too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("failed to read media file")
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("failed to read media file")
	}

	var rawThreads []string
	if raw := c.FormValue("thread_ids"); raw != "" {
		rawThreads = strings.Split(raw, ",")
	}
	var primaryRaw *string
	if raw := c.FormValue("primary_thread_id"); raw != "" {
		primaryRaw = &raw
	}
	threadIDs, primaryThreadID, err := parseThreadIDs(rawThreads, primaryRaw)
	if err != nil {
		return nil, err
	}

	input := &appWork.PublishInput{
		WorkType:         work.TypeImage,
		Title:            c.FormValue("title"),
		ImageBytes:       imageBytes,
		ImageFilename:    fileHeader.Filename,
		ImageContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		ThreadIDs:        threadIDs,
		PrimaryThreadID:  primaryThreadID,
	}
	if description := c.FormValue("description"); description != "" {
		input.Description = &description
	}
	if width, err := strconv.Atoi(c.FormValue("width")); err == nil {
		input.Width = &width
	}
	if height, err := strconv.Atoi(c.FormValue("height")); err == nil {
		input.Height = &height
	}

	return input, nil
}

func parseThreadIDs(raw []string, primary *string) ([]uuid.UUID, *uuid.UUID, error) {
	threadIDs := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			return nil, nil, errors.New("invalid thread_ids")
		}
		threadIDs = append(threadIDs, id)
	}

	var primaryThreadID *uuid.UUID
	if primary != nil {
		id, err := uuid.Parse(strings.TrimSpace(*primary))
		if err != nil {
			return nil, nil, errors.New("invalid primary_thread_id")
		}
		primaryThreadID = &id
	}

	return threadIDs, primaryThreadID, nil
}
