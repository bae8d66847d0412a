package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	commentMocks "github.com/artfolio/artfolio/pkg/domain/comment/mocks"
	followMocks "github.com/artfolio/artfolio/pkg/domain/follow/mocks"
	"github.com/artfolio/artfolio/pkg/domain/work"
	workMocks "github.com/artfolio/artfolio/pkg/domain/work/mocks"
	"github.com/artfolio/artfolio/pkg/infra/cache"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFollowingFeed_CacheHitSkipsRepositories(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	works := new(workMocks.Repository)
	follows := new(followMocks.Repository)
	comments := new(commentMocks.Repository)
	builder := NewBuilder(testLogger(), works, follows, comments, cache.NewCacheWithClient(client))

	userID := uuid.New()
	cached := work.Page{Works: []work.Work{{ID: uuid.New(), Title: "Cached"}}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	redisMock.ExpectGet(fmt.Sprintf(cache.FeedKeyPattern, userID)).SetVal(string(data))

	page, err := builder.FollowingFeed(context.Background(), userID, nil, 20)

	require.NoError(t, err)
	assert.Equal(t, "Cached", page.Works[0].Title)
	follows.AssertNotCalled(t, "ListFollowees", mock.Anything, mock.Anything)
	works.AssertNotCalled(t, "ListByAuthors", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestFollowingFeed_BuildsPageWithCommentCounts(t *testing.T) {
	works := new(workMocks.Repository)
	follows := new(followMocks.Repository)
	comments := new(commentMocks.Repository)
	builder := NewBuilder(testLogger(), works, follows, comments, nil)

	userID := uuid.New()
	followees := []uuid.UUID{uuid.New(), uuid.New()}
	firstWork := work.Work{ID: uuid.New(), Title: "First"}
	secondWork := work.Work{ID: uuid.New(), Title: "Second"}

	follows.On("ListFollowees", mock.Anything, userID).Return(followees, nil)
	works.On("ListByAuthors", mock.Anything, followees, (*time.Time)(nil), 20).
		Return(&work.Page{Works: []work.Work{firstWork, secondWork}, HasMore: false}, nil)
	comments.On("CountByWork", mock.Anything, firstWork.ID).Return(int64(3), nil)
	comments.On("CountByWork", mock.Anything, secondWork.ID).Return(int64(0), nil)

	page, err := builder.FollowingFeed(context.Background(), userID, nil, 20)

	require.NoError(t, err)
	require.Len(t, page.Works, 2)
	assert.Equal(t, int64(3), page.Works[0].CommentsCount)
	assert.Equal(t, int64(0), page.Works[1].CommentsCount)
	follows.AssertExpectations(t)
	works.AssertExpectations(t)
}

func TestFollowingFeed_CursorPageBypassesCache(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	works := new(workMocks.Repository)
	follows := new(followMocks.Repository)
	comments := new(commentMocks.Repository)
	builder := NewBuilder(testLogger(), works, follows, comments, cache.NewCacheWithClient(client))

	userID := uuid.New()
	cursor := time.Now().Add(-time.Hour)
	follows.On("ListFollowees", mock.Anything, userID).Return([]uuid.UUID{}, nil)
	works.On("ListByAuthors", mock.Anything, []uuid.UUID{}, &cursor, 20).
		Return(&work.Page{Works: []work.Work{}}, nil)

	_, err := builder.FollowingFeed(context.Background(), userID, &cursor, 20)

	require.NoError(t, err)
	// No redis expectations were registered, so any cache access would fail.
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestExploreFeed_ListsRecentWorks(t *testing.T) {
	works := new(workMocks.Repository)
	follows := new(followMocks.Repository)
	comments := new(commentMocks.Repository)
	builder := NewBuilder(testLogger(), works, follows, comments, nil)

	entity := work.Work{ID: uuid.New(), Title: "Open Call"}
	works.On("ListRecent", mock.Anything, (*time.Time)(nil), 10).
		Return(&work.Page{Works: []work.Work{entity}, HasMore: true}, nil)
	comments.On("CountByWork", mock.Anything, entity.ID).Return(int64(7), nil)

	page, err := builder.ExploreFeed(context.Background(), nil, 10)

	require.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Equal(t, int64(7), page.Works[0].CommentsCount)
	follows.AssertNotCalled(t, "ListFollowees", mock.Anything, mock.Anything)
}
