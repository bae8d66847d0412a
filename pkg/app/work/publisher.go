package work

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appDetection "github.com/artfolio/artfolio/pkg/app/detection"
	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/domain/work"
	"github.com/artfolio/artfolio/pkg/infra/metrics"
	"github.com/artfolio/artfolio/pkg/infra/storage"
)

// ErrDetectionUnavailable wraps detector faults (credentials, transport,
// capability). It means "we could not check", as opposed to "we checked and
// the content failed". The UI offers a retry for the former only.
var ErrDetectionUnavailable = errors.New("could not verify content right now")

type PublishInput struct {
	AuthorID         uuid.UUID
	WorkType         work.Type
	Title            string
	Content          string
	Description      *string
	ImageBytes       []byte
	ImageFilename    string
	ImageContentType string
	Width            *int
	Height           *int
	CoverImageURL    *string
	CoverImagePath   *string
	ThreadIDs        []uuid.UUID
	PrimaryThreadID  *uuid.UUID
}

//go:generate mockery --name=Publisher --dir=. --output=./mocks --filename=work_publisher_mock.go --case=underscore --with-expecter
type Publisher interface {
	Publish(ctx context.Context, input PublishInput) (*work.Work, *detection.Result, error)
}

type publisher struct {
	logger   *logrus.Logger
	repo     work.Repository
	detector appDetection.Service
	media    storage.MediaStore
}

func NewPublisher(
	logger *logrus.Logger,
	repo work.Repository,
	detector appDetection.Service,
	media storage.MediaStore,
) Publisher {
	return &publisher{
		logger:   logger,
		repo:     repo,
		detector: detector,
		media:    media,
	}
}

// Publish runs the AI-content gate and, only on a pass, persists the work.
// Nothing is written before the gate decides; a rejection or a detector fault
// aborts the whole operation.
func (p *publisher) Publish(ctx context.Context, input PublishInput) (*work.Work, *detection.Result, error) {
	if !input.WorkType.IsValid() {
		return nil, nil, domain.ErrInvalidWorkType
	}

	result, err := p.runGate(ctx, input)
	if err != nil {
		metrics.DetectionCallsTotal.WithLabelValues(providerLabel(result), "error").Inc()
		p.logger.WithError(err).Error("detection call failed, aborting publish")
		return nil, nil, fmt.Errorf("%w: %w", ErrDetectionUnavailable, err)
	}

	if !result.Passed {
		metrics.DetectionCallsTotal.WithLabelValues(result.Provider, "rejected").Inc()
		metrics.PublishGateRejections.Inc()
		p.logger.WithFields(logrus.Fields{
			"provider":  result.Provider,
			"raw_score": result.RawScore,
			"author_id": input.AuthorID,
		}).Info("publish rejected by AI-content gate")
		return nil, result, &detection.ContentRejectedError{Result: result}
	}
	metrics.DetectionCallsTotal.WithLabelValues(result.Provider, "passed").Inc()

	entity, err := p.buildWork(ctx, input)
	if err != nil {
		return nil, result, err
	}

	if err := p.repo.SaveWithThreads(ctx, entity, input.ThreadIDs); err != nil {
		p.logger.WithError(err).Error("failed to persist work")
		return nil, result, fmt.Errorf("failed to persist work: %w", err)
	}

	return entity, result, nil
}

func (p *publisher) runGate(ctx context.Context, input PublishInput) (*detection.Result, error) {
	if input.WorkType == work.TypeImage {
		return p.detector.DetectImage(ctx, input.ImageBytes, input.ImageFilename)
	}
	return p.detector.DetectText(ctx, input.Content)
}

func (p *publisher) buildWork(ctx context.Context, input PublishInput) (*work.Work, error) {
	entity := &work.Work{
		AuthorID:        input.AuthorID,
		WorkType:        input.WorkType,
		Title:           input.Title,
		Description:     input.Description,
		Width:           input.Width,
		Height:          input.Height,
		PrimaryThreadID: input.PrimaryThreadID,
		IsPublished:     true,
	}

	switch input.WorkType {
	case work.TypeImage:
		// Image bytes were already inspected by the gate; only now do they
		// reach the bucket.
		path := fmt.Sprintf("works/%s/%s", input.AuthorID, input.ImageFilename)
		url, err := p.media.Upload(ctx, path, input.ImageContentType, input.ImageBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to upload media: %w", err)
		}
		entity.ImageURL = &url
		entity.ImagePath = &path
		if entity.Title == "" {
			entity.Title = input.ImageFilename
		}
	default:
		content := strings.TrimSpace(input.Content)
		entity.Content = &content
		entity.ImageURL = input.CoverImageURL
		entity.ImagePath = input.CoverImagePath
		if entity.Title == "" {
			entity.Title = excerpt(content, 50)
		}
	}

	return entity, nil
}

func excerpt(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}

func providerLabel(result *detection.Result) string {
	if result != nil {
		return result.Provider
	}
	return "unknown"
}
