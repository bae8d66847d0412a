package comment

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

	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/domain/comment"
	commentMocks "github.com/artfolio/artfolio/pkg/domain/comment/mocks"
	"github.com/artfolio/artfolio/pkg/domain/work"
	workMocks "github.com/artfolio/artfolio/pkg/domain/work/mocks"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCreate_SavesComment(t *testing.T) {
	repo := new(commentMocks.Repository)
	works := new(workMocks.Repository)
	creator := NewCreator(testLogger(), repo, works)

	workID := uuid.New()
	authorID := uuid.New()
	works.On("Get", mock.Anything, workID).Return(&work.Work{ID: workID}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(entity *comment.Comment) bool {
		return entity.WorkID == workID && entity.AuthorID == authorID && entity.Body == "lovely brushwork"
	})).Return(nil)

	entity, err := creator.Create(context.Background(), workID, authorID, "lovely brushwork")

	require.NoError(t, err)
	assert.Equal(t, "lovely brushwork", entity.Body)
	repo.AssertExpectations(t)
}

func TestCreate_WorkNotFound(t *testing.T) {
	repo := new(commentMocks.Repository)
	works := new(workMocks.Repository)
	creator := NewCreator(testLogger(), repo, works)

	workID := uuid.New()
	works.On("Get", mock.Anything, workID).Return(nil, errors.New("record not found"))

	_, err := creator.Create(context.Background(), workID, uuid.New(), "hello")

	assert.True(t, domain.IsNotFoundError(err))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
