package detection

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/config"
	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/infra/detector/gptzero"
	"github.com/artfolio/artfolio/pkg/infra/detector/sightengine"
	"github.com/artfolio/artfolio/pkg/infra/httpx"
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=detection_service_mock.go --case=underscore --with-expecter
type Service interface {
	Detect(ctx context.Context, contentType detection.ContentType, content interface{}, filename string) (*detection.Result, error)
	DetectText(ctx context.Context, text string) (*detection.Result, error)
	DetectImage(ctx context.Context, imageBytes []byte, filename string) (*detection.Result, error)
}

// service owns one adapter per modality, both built once at startup. A
// modality whose credentials are absent keeps its construction error and
// returns it on every call; the other modality stays usable.
type service struct {
	logger       *logrus.Logger
	text         detection.Detector
	textErr      error
	image        detection.Detector
	imageErr     error
	textBreaker  httpx.CircuitBreaker
	imageBreaker httpx.CircuitBreaker
}

// One breaker per vendor so an outage at one provider never blocks the other
// modality.
func NewService(cfg config.DetectionConfig, logger *logrus.Logger, client httpx.Client) Service {
	s := &service{
		logger:       logger,
		textBreaker:  httpx.NewCircuitBreaker(gptzero.ProviderName, 30*time.Second, 5),
		imageBreaker: httpx.NewCircuitBreaker(sightengine.ProviderName, 30*time.Second, 5),
	}

	text, err := gptzero.NewDetector(gptzero.Config{
		APIKey:    cfg.GPTZero.APIKey,
		Endpoint:  cfg.GPTZero.Endpoint,
		Threshold: cfg.GPTZero.Threshold,
	}, logger, client)
	if err != nil {
		logger.WithError(err).Warn("text detection is disabled")
		s.textErr = err
	} else {
		s.text = text
	}

	image, err := sightengine.NewDetector(sightengine.Config{
		APIUser:   cfg.Sightengine.APIUser,
		APISecret: cfg.Sightengine.APISecret,
		Endpoint:  cfg.Sightengine.Endpoint,
		Threshold: cfg.Sightengine.Threshold,
	}, logger, client)
	if err != nil {
		logger.WithError(err).Warn("image detection is disabled")
		s.imageErr = err
	} else {
		s.image = image
	}

	return s
}

// Detect validates that the content representation matches the declared
// content type before any adapter is touched, then dispatches.
func (s *service) Detect(
	ctx context.Context,
	contentType detection.ContentType,
	content interface{},
	filename string,
) (*detection.Result, error) {
	switch contentType {
	case detection.ContentTypeImage:
		imageBytes, ok := content.([]byte)
		if !ok {
			return nil, detection.ErrContentTypeMismatch
		}
		return s.DetectImage(ctx, imageBytes, filename)
	case detection.ContentTypeText:
		text, ok := content.(string)
		if !ok {
			return nil, detection.ErrContentTypeMismatch
		}
		return s.DetectText(ctx, text)
	default:
		return nil, detection.ErrContentTypeMismatch
	}
}

func (s *service) DetectText(ctx context.Context, text string) (*detection.Result, error) {
	if s.text == nil {
		return nil, s.textErr
	}

	var result *detection.Result
	err := s.textBreaker.Execute(func() error {
		var callErr error
		result, callErr = s.text.CheckText(ctx, text)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) DetectImage(ctx context.Context, imageBytes []byte, filename string) (*detection.Result, error) {
	if s.image == nil {
		return nil, s.imageErr
	}

	var result *detection.Result
	err := s.imageBreaker.Execute(func() error {
		var callErr error
		result, callErr = s.image.CheckImage(ctx, imageBytes, filename)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
