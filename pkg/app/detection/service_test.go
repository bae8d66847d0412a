package detection

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/pkg/config"
	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/infra/detector/gptzero"
	"github.com/artfolio/artfolio/pkg/infra/detector/sightengine"
	"github.com/artfolio/artfolio/pkg/infra/httpx/mocks"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fullConfig() config.DetectionConfig {
	return config.DetectionConfig{
		GPTZero: config.GPTZeroConfig{APIKey: "text-key"},
		Sightengine: config.SightengineConfig{
			APIUser:   "user",
			APISecret: "secret",
		},
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDetect_DispatchesTextToTextProvider(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("x-api-key") == "text-key"
	})).Return(jsonResponse(http.StatusOK, `{"documents":[{"completely_generated_prob":0.2}]}`), nil)

	service := NewService(fullConfig(), testLogger(), client)

	result, err := service.Detect(context.Background(), detection.ContentTypeText, "an essay", "")
	require.NoError(t, err)

	assert.Equal(t, gptzero.ProviderName, result.Provider)
	assert.True(t, result.Passed)
	client.AssertExpectations(t)
}

func TestDetect_DispatchesImageToImageProvider(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data")
	})).Return(jsonResponse(http.StatusOK, `{"type":{"ai_generated":0.1}}`), nil)

	service := NewService(fullConfig(), testLogger(), client)

	result, err := service.Detect(context.Background(), detection.ContentTypeImage, []byte{0xFF, 0xD8}, "art.jpg")
	require.NoError(t, err)

	assert.Equal(t, sightengine.ProviderName, result.Provider)
	client.AssertExpectations(t)
}

func TestDetect_TextContentTypeWithImageBytes(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	service := NewService(fullConfig(), testLogger(), client)

	_, err := service.Detect(context.Background(), detection.ContentTypeText, []byte{0xFF}, "")

	assert.ErrorIs(t, err, detection.ErrContentTypeMismatch)
	client.AssertNotCalled(t, "Do", mock.Anything)
}

func TestDetect_ImageContentTypeWithString(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	service := NewService(fullConfig(), testLogger(), client)

	_, err := service.Detect(context.Background(), detection.ContentTypeImage, "not bytes", "")

	assert.ErrorIs(t, err, detection.ErrContentTypeMismatch)
	client.AssertNotCalled(t, "Do", mock.Anything)
}

func TestDetect_UnknownContentType(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	service := NewService(fullConfig(), testLogger(), client)

	_, err := service.Detect(context.Background(), detection.ContentType("audio"), "content", "")

	assert.ErrorIs(t, err, detection.ErrContentTypeMismatch)
}

func TestService_MissingImageCredentialsKeepsTextUsable(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusOK, `{"documents":[{"completely_generated_prob":0.3}]}`), nil)

	cfg := fullConfig()
	cfg.Sightengine = config.SightengineConfig{}
	service := NewService(cfg, testLogger(), client)

	_, err := service.DetectImage(context.Background(), []byte{0x01}, "art.png")
	var configurationErr *detection.ConfigurationError
	require.ErrorAs(t, err, &configurationErr)

	result, err := service.DetectText(context.Background(), "an essay")
	require.NoError(t, err)
	assert.True(t, result.Passed)
}

func TestService_MissingTextCredentialsKeepsImageUsable(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusOK, `{"type":{"ai_generated":0.2}}`), nil)

	cfg := fullConfig()
	cfg.GPTZero = config.GPTZeroConfig{}
	service := NewService(cfg, testLogger(), client)

	_, err := service.DetectText(context.Background(), "an essay")
	var configurationErr *detection.ConfigurationError
	require.ErrorAs(t, err, &configurationErr)

	result, err := service.DetectImage(context.Background(), []byte{0x01}, "art.png")
	require.NoError(t, err)
	assert.True(t, result.Passed)
}
