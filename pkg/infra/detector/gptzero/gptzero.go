package gptzero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/infra/httpx"
)

const ProviderName = "gptzero"

// Detector wraps the GPTZero text-classification API. It is text-only;
// CheckImage is a capability mismatch, not a transport failure.
type Detector struct {
	client    httpx.Client
	logger    *logrus.Logger
	apiKey    string
	endpoint  string
	threshold float64
}

type Config struct {
	APIKey    string  `mapstructure:"api_key"`
	Endpoint  string  `mapstructure:"endpoint"`
	Threshold float64 `mapstructure:"threshold"`
}

type predictRequest struct {
	Document string `json:"document"`
}

func NewDetector(cfg Config, logger *logrus.Logger, client httpx.Client) (*Detector, error) {
	if cfg.APIKey == "" {
		return nil, &detection.ConfigurationError{Provider: ProviderName, Reason: "missing API key"}
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://api.gptzero.me/v2/predict/text"
	}
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = 0.65
	}
	return &Detector{
		client:    client,
		logger:    logger,
		apiKey:    cfg.APIKey,
		endpoint:  endpoint,
		threshold: threshold,
	}, nil
}

func (d *Detector) CheckImage(ctx context.Context, imageBytes []byte, filename string) (*detection.Result, error) {
	return nil, &detection.CapabilityError{Provider: ProviderName, Operation: "image detection"}
}

func (d *Detector) CheckText(ctx context.Context, text string) (*detection.Result, error) {
	payload, err := json.Marshal(predictRequest{Document: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gptzero request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create gptzero request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", d.apiKey)

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

	aiProb := d.extractGeneratedProb(body)

	var details map[string]interface{}
	if err := json.Unmarshal(body, &details); err != nil {
		details = nil
	}

	return &detection.Result{
		Passed:     aiProb < d.threshold,
		Confidence: 1 - aiProb,
		RawScore:   aiProb,
		Provider:   ProviderName,
		Details:    details,
	}, nil
}

// extractGeneratedProb reads documents[0].completely_generated_prob. A body
// missing the expected fields scores 0, which passes the gate; the provider
// schema has drifted before and a rejection on drift would block every
// publish. Logged at WARN so the fail-open is visible.
func (d *Detector) extractGeneratedProb(body []byte) float64 {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		d.logger.WithError(err).Warn("gptzero response is not valid JSON, treating as inconclusive")
		return 0
	}
	docs := v.GetArray("documents")
	if len(docs) == 0 {
		d.logger.Warn("gptzero response has no documents entry, treating as inconclusive")
		return 0
	}
	prob := docs[0].Get("completely_generated_prob")
	if prob == nil {
		d.logger.Warn("gptzero response missing completely_generated_prob, treating as inconclusive")
		return 0
	}
	return prob.GetFloat64()
}
