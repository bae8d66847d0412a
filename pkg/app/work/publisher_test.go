package work

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	detectionMocks "github.com/artfolio/artfolio/pkg/app/detection/mocks"
	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/domain/work"
	workMocks "github.com/artfolio/artfolio/pkg/domain/work/mocks"
	storageMocks "github.com/artfolio/artfolio/pkg/infra/storage/mocks"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func passedResult(provider string, score float64) *detection.Result {
	return &detection.Result{
		Passed:     true,
		Confidence: 1 - score,
		RawScore:   score,
		Provider:   provider,
	}
}

func rejectedResult(provider string, score float64) *detection.Result {
	return &detection.Result{
		Passed:     false,
		Confidence: 1 - score,
		RawScore:   score,
		Provider:   provider,
	}
}

func TestPublish_TextPassesGateAndPersists(t *testing.T) {
	repo := new(workMocks.Repository)
	detector := new(detectionMocks.Service)
	media := new(storageMocks.MediaStore)
	publisher := NewPublisher(testLogger(), repo, detector, media)

	authorID := uuid.New()
	detector.On("DetectText", mock.Anything, "  my essay  ").
		Return(passedResult("gptzero", 0.12), nil)
	repo.On("SaveWithThreads", mock.Anything, mock.MatchedBy(func(w *work.Work) bool {
		return w.AuthorID == authorID &&
			w.WorkType == work.TypeEssay &&
			w.Content != nil && *w.Content == "my essay" &&
			w.IsPublished
	}), []uuid.UUID(nil)).Return(nil)

	entity, result, err := publisher.Publish(context.Background(), PublishInput{
		AuthorID: authorID,
		WorkType: work.TypeEssay,
		Title:    "My Essay",
		Content:  "  my essay  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "My Essay", entity.Title)
	assert.InDelta(t, 0.88, result.Confidence, 1e-9)
	repo.AssertExpectations(t)
	detector.AssertExpectations(t)
	media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_RejectedTextIsNotPersisted(t *testing.T) {
	repo := new(workMocks.Repository)
	detector := new(detectionMocks.Service)
	media := new(storageMocks.MediaStore)
	publisher := NewPublisher(testLogger(), repo, detector, media)

	detector.On("DetectText", mock.Anything, "generated text").
		Return(rejectedResult("gptzero", 0.91), nil)

	_, result, err := publisher.Publish(context.Background(), PublishInput{
		AuthorID: uuid.New(),
		WorkType: work.TypeTextPost,
		Content:  "generated text",
	})

	require.Error(t, err)
	assert.True(t, detection.IsContentRejected(err))
	assert.ErrorContains(t, err, "91% likely AI-generated")
	assert.InDelta(t, 0.91, result.RawScore, 1e-9)
	repo.AssertNotCalled(t, "SaveWithThreads", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_DetectorFaultAbortsWithoutPersisting(t *testing.T) {
	repo := new(workMocks.Repository)
	detector := new(detectionMocks.Service)
	media := new(storageMocks.MediaStore)
	publisher := NewPublisher(testLogger(), repo, detector, media)

	detector.On("DetectText", mock.Anything, mock.Anything).
		Return(nil, &detection.TransportError{Provider: "gptzero", Err: errors.New("timeout")})

	_, _, err := publisher.Publish(context.Background(), PublishInput{
		AuthorID: uuid.New(),
		WorkType: work.TypeEssay,
		Content:  "an essay",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDetectionUnavailable)
	assert.False(t, detection.IsContentRejected(err))
	repo.AssertNotCalled(t, "SaveWithThreads", mock.Anything, mock.Anything, mock.Anything)
	media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_ImageUploadsOnlyAfterGatePasses(t *testing.T) {
	repo := new(workMocks.Repository)
	detector := new(detectionMocks.Service)
	media := new(storageMocks.MediaStore)
	publisher := NewPublisher(testLogger(), repo, detector, media)

	authorID := uuid.New()
	imageBytes := []byte{0xFF, 0xD8, 0xFF}
	expectedPath := fmt.Sprintf("works/%s/art.jpg", authorID)

	detector.On("DetectImage", mock.Anything, imageBytes, "art.jpg").
		Return(passedResult("sightengine", 0.05), nil)
	media.On("Upload", mock.Anything, expectedPath, "image/jpeg", imageBytes).
		Return("https://bucket.s3.eu-west-1.amazonaws.com/"+expectedPath, nil)
	repo.On("SaveWithThreads", mock.Anything, mock.MatchedBy(func(w *work.Work) bool {
		return w.ImageURL != nil && w.ImagePath != nil && *w.ImagePath == expectedPath
	}), []uuid.UUID(nil)).Return(nil)

	entity, _, err := publisher.Publish(context.Background(), PublishInput{
		AuthorID:         authorID,
		WorkType:         work.TypeImage,
		Title:            "Morning Light",
		ImageBytes:       imageBytes,
		ImageFilename:    "art.jpg",
		ImageContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, "Morning Light", entity.Title)
	media.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestPublish_RejectedImageNeverReachesStorage(t *testing.T) {
	repo := new(workMocks.Repository)
	detector := new(detectionMocks.Service)
	media := new(storageMocks.MediaStore)
	publisher := NewPublisher(testLogger(), repo, detector, media)

	detector.On("DetectImage", mock.Anything, mock.Anything, mock.Anything).
		Return(rejectedResult("sightengine", 0.97), nil)

	_, _, err := publisher.Publish(context.Background(), PublishInput{
		AuthorID:      uuid.New(),
		WorkType:      work.TypeImage,
		ImageBytes:    []byte{0x01},
		ImageFilename: "art.png",
	})

	require.Error(t, err)
	assert.True(t, detection.IsContentRejected(err))
	media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveWithThreads", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_InvalidWorkType(t *testing.T) {
	repo := new(workMocks.Repository)
	detector := new(detectionMocks.Service)
	media := new(storageMocks.MediaStore)
	publisher := NewPublisher(testLogger(), repo, detector, media)

	_, _, err := publisher.Publish(context.Background(), PublishInput{
		AuthorID: uuid.New(),
		WorkType: work.Type("sculpture"),
		Content:  "clay",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidWorkType)
	detector.AssertNotCalled(t, "DetectText", mock.Anything, mock.Anything)
}

func TestPublish_TextPostDefaultsTitleToExcerpt(t *testing.T) {
	repo := new(workMocks.Repository)
	detector := new(detectionMocks.Service)
	media := new(storageMocks.MediaStore)
	publisher := NewPublisher(testLogger(), repo, detector, media)

	longContent := "a reflection on painting outdoors in winter, where the light changes faster than the paint dries"
	detector.On("DetectText", mock.Anything, longContent).
		Return(passedResult("gptzero", 0.1), nil)
	repo.On("SaveWithThreads", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	entity, _, err := publisher.Publish(context.Background(), PublishInput{
		AuthorID: uuid.New(),
		WorkType: work.TypeTextPost,
		Content:  longContent,
	})

	require.NoError(t, err)
	assert.Len(t, []rune(entity.Title), 53)
	assert.Equal(t, "...", entity.Title[len(entity.Title)-3:])
}
