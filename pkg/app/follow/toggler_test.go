package follow

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/domain/follow"
	followMocks "github.com/artfolio/artfolio/pkg/domain/follow/mocks"
	"github.com/artfolio/artfolio/pkg/infra/cache"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestToggle_SelfFollowRejected(t *testing.T) {
	repo := new(followMocks.Repository)
	toggler := NewToggler(testLogger(), repo, nil)

	userID := uuid.New()
	_, err := toggler.Toggle(context.Background(), userID, userID)

	assert.ErrorIs(t, err, domain.ErrSelfFollow)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggle_FollowCreatesEdgeAndInvalidatesFeed(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	repo := new(followMocks.Repository)
	toggler := NewToggler(testLogger(), repo, cache.NewCacheWithClient(client))

	followerID := uuid.New()
	followeeID := uuid.New()
	repo.On("Exists", mock.Anything, followerID, followeeID).Return(false, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(edge *follow.Follow) bool {
		return edge.FollowerID == followerID && edge.FolloweeID == followeeID
	})).Return(nil)
	redisMock.ExpectDel(fmt.Sprintf(cache.FeedKeyPattern, followerID)).SetVal(1)

	following, err := toggler.Toggle(context.Background(), followerID, followeeID)

	require.NoError(t, err)
	assert.True(t, following)
	repo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestToggle_UnfollowRemovesEdge(t *testing.T) {
	repo := new(followMocks.Repository)
	toggler := NewToggler(testLogger(), repo, nil)

	followerID := uuid.New()
	followeeID := uuid.New()
	repo.On("Exists", mock.Anything, followerID, followeeID).Return(true, nil)
	repo.On("Delete", mock.Anything, followerID, followeeID).Return(nil)

	following, err := toggler.Toggle(context.Background(), followerID, followeeID)

	require.NoError(t, err)
	assert.False(t, following)
	repo.AssertExpectations(t)
}
