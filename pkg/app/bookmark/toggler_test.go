package bookmark

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/pkg/domain/bookmark"
	bookmarkMocks "github.com/artfolio/artfolio/pkg/domain/bookmark/mocks"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestToggle_AddsBookmarkWhenAbsent(t *testing.T) {
	repo := new(bookmarkMocks.Repository)
	toggler := NewToggler(testLogger(), repo)

	userID := uuid.New()
	workID := uuid.New()
	repo.On("Exists", mock.Anything, userID, workID).Return(false, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(entity *bookmark.Bookmark) bool {
		return entity.UserID == userID && entity.WorkID == workID
	})).Return(nil)

	bookmarked, err := toggler.Toggle(context.Background(), userID, workID)

	require.NoError(t, err)
	assert.True(t, bookmarked)
	repo.AssertExpectations(t)
}

func TestToggle_RemovesBookmarkWhenPresent(t *testing.T) {
	repo := new(bookmarkMocks.Repository)
	toggler := NewToggler(testLogger(), repo)

	userID := uuid.New()
	workID := uuid.New()
	repo.On("Exists", mock.Anything, userID, workID).Return(true, nil)
	repo.On("Delete", mock.Anything, userID, workID).Return(nil)

	bookmarked, err := toggler.Toggle(context.Background(), userID, workID)

	require.NoError(t, err)
	assert.False(t, bookmarked)
}

func TestToggle_ExistsFailure(t *testing.T) {
	repo := new(bookmarkMocks.Repository)
	toggler := NewToggler(testLogger(), repo)

	repo.On("Exists", mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("db down"))

	_, err := toggler.Toggle(context.Background(), uuid.New(), uuid.New())

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
