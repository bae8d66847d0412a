package sightengine

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/infra/httpx/mocks"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newDetectorForTest(t *testing.T, client *mocks.MockHTTPClient, threshold float64) *Detector {
	t.Helper()
	detector, err := NewDetector(Config{
		APIUser:   "user",
		APISecret: "secret",
		Threshold: threshold,
	}, testLogger(), client)
	require.NoError(t, err)
	return detector
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNewDetector_MissingCredentials(t *testing.T) {
	_, err := NewDetector(Config{APIUser: "user"}, testLogger(), new(mocks.MockHTTPClient))

	var configurationErr *detection.ConfigurationError
	require.ErrorAs(t, err, &configurationErr)
	assert.Equal(t, ProviderName, configurationErr.Provider)
}

func TestCheckImage_HumanLikelyPasses(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if !strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
			return false
		}
		body, _ := io.ReadAll(req.Body)
		payload := string(body)
		return strings.Contains(payload, "genai") &&
			strings.Contains(payload, `name="api_user"`) &&
			strings.Contains(payload, `filename="photo.jpg"`)
	})).Return(jsonResponse(http.StatusOK, `{"type":{"ai_generated":0.08}}`), nil)

	detector := newDetectorForTest(t, client, 0)

	result, err := detector.CheckImage(context.Background(), []byte{0xFF, 0xD8, 0xFF}, "photo.jpg")
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.InDelta(t, 0.08, result.RawScore, 1e-9)
	assert.InDelta(t, 0.92, result.Confidence, 1e-9)
	assert.Equal(t, ProviderName, result.Provider)
	client.AssertExpectations(t)
}

func TestCheckImage_ScoreAtThresholdFails(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusOK, `{"type":{"ai_generated":0.65}}`), nil)

	detector := newDetectorForTest(t, client, 0)

	result, err := detector.CheckImage(context.Background(), []byte{0x01}, "art.png")
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.InDelta(t, 0.35, result.Confidence, 1e-9)
}

func TestCheckImage_MalformedBodyFailsOpen(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusOK, `<html>gateway error</html>`), nil)

	detector := newDetectorForTest(t, client, 0)

	result, err := detector.CheckImage(context.Background(), []byte{0x01}, "art.png")
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Zero(t, result.RawScore)
}

func TestCheckImage_MissingScoreFieldFailsOpen(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusOK, `{"status":"success","type":{}}`), nil)

	detector := newDetectorForTest(t, client, 0)

	result, err := detector.CheckImage(context.Background(), []byte{0x01}, "art.png")
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Zero(t, result.RawScore)
}

func TestCheckImage_UnexpectedStatus(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusBadRequest, `{"status":"failure"}`), nil)

	detector := newDetectorForTest(t, client, 0)

	_, err := detector.CheckImage(context.Background(), []byte{0x01}, "art.png")

	var transportErr *detection.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, ProviderName, transportErr.Provider)
}

func TestCheckImage_TransportFailure(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	client.On("Do", mock.Anything).Return(nil, errors.New("dial timeout"))

	detector := newDetectorForTest(t, client, 0)

	_, err := detector.CheckImage(context.Background(), []byte{0x01}, "art.png")

	var transportErr *detection.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestCheckText_NotSupported(t *testing.T) {
	client := new(mocks.MockHTTPClient)
	detector := newDetectorForTest(t, client, 0)

	_, err := detector.CheckText(context.Background(), "an essay")

	var capabilityErr *detection.CapabilityError
	require.ErrorAs(t, err, &capabilityErr)
	assert.Equal(t, ProviderName, capabilityErr.Provider)
	client.AssertNotCalled(t, "Do", mock.Anything)
}
