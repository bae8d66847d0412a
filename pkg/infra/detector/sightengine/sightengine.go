package sightengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/infra/httpx"
)

const ProviderName = "sightengine"

// Detector wraps the Sightengine genai model. The filename only feeds the
// multipart part name and logging; the provider infers the format from the
// bytes.
type Detector struct {
	client    httpx.Client
	logger    *logrus.Logger
	apiUser   string
	apiSecret string
	endpoint  string
	threshold float64
}

type Config struct {
	APIUser   string  `mapstructure:"api_user"`
	APISecret string  `mapstructure:"api_secret"`
	Endpoint  string  `mapstructure:"endpoint"`
	Threshold float64 `mapstructure:"threshold"`
}

func NewDetector(cfg Config, logger *logrus.Logger, client httpx.Client) (*Detector, error) {
	if cfg.APIUser == "" || cfg.APISecret == "" {
		return nil, &detection.ConfigurationError{Provider: ProviderName, Reason: "missing API credentials"}
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://api.sightengine.com/1.0/check.json"
	}
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = 0.65
	}
	return &Detector{
		client:    client,
		logger:    logger,
		apiUser:   cfg.APIUser,
		apiSecret: cfg.APISecret,
		endpoint:  endpoint,
		threshold: threshold,
	}, nil
}

func (d *Detector) CheckText(ctx context.Context, text string) (*detection.Result, error) {
	return nil, &detection.CapabilityError{Provider: ProviderName, Operation: "text detection"}
}

func (d *Detector) CheckImage(ctx context.Context, imageBytes []byte, filename string) (*detection.Result, error) {
	if filename == "" {
		filename = "image"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("media", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create media form part: %w", err)
	}
	if _, err := part.Write(imageBytes); err != nil {
		return nil, fmt.Errorf("failed to write media form part: %w", err)
	}
	_ = writer.WriteField("models", "genai")
	_ = writer.WriteField("api_user", d.apiUser)
	_ = writer.WriteField("api_secret", d.apiSecret)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create sightengine request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &detection.TransportError{Provider: ProviderName, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &detection.TransportError{Provider: ProviderName, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &detection.TransportError{
			Provider: ProviderName,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)),
		}
	}

	score := d.extractAIScore(body)

	var details map[string]interface{}
	if err := json.Unmarshal(body, &details); err != nil {
		details = nil
	}

	return &detection.Result{
		Passed:     score < d.threshold,
		Confidence: 1 - score,
		RawScore:   score,
		Provider:   ProviderName,
		Details:    details,
	}, nil
}

// extractAIScore reads type.ai_generated; a response missing the field scores
// 0 and passes, mirroring the text adapter's fail-open behavior on provider
// schema drift.
func (d *Detector) extractAIScore(body []byte) float64 {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		d.logger.WithError(err).Warn("sightengine response is not valid JSON, treating as inconclusive")
		return 0
	}
	score := v.Get("type", "ai_generated")
	if score == nil {
		d.logger.Warn("sightengine response missing type.ai_generated, treating as inconclusive")
		return 0
	}
	return score.GetFloat64()
}
