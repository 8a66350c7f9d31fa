package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/creatorboard/creator-review/internal/models"
)

type AdminRepoMock struct {
	mock.Mock
}

func (m *AdminRepoMock) CreateYoutuber(ctx context.Context, y models.Youtuber, categoryIDs []int, adminID int) (int, error) {
	args := m.Called(ctx, y, categoryIDs, adminID)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) UpdateYoutuber(ctx context.Context, y models.Youtuber, categoryIDs []int, id int) (int, error) {
	args := m.Called(ctx, y, categoryIDs, id)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) RemoveYoutuber(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CreateCategory(ctx context.Context, c models.Category) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) UpdateCategory(ctx context.Context, c models.Category, id int) (int, error) {
	args := m.Called(ctx, c, id)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) RemoveCategory(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CreateArticle(ctx context.Context, a models.Article, youtuberIDs []int) (int, error) {
	args := m.Called(ctx, a, youtuberIDs)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) UpdateArticle(ctx context.Context, a models.Article, youtuberIDs []int, id int) (int, error) {
	args := m.Called(ctx, a, youtuberIDs, id)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) RemoveArticle(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CreateNotice(ctx context.Context, body string) error {
	args := m.Called(ctx, body)
	return args.Error(0)
}

func (m *AdminRepoMock) ListNotices(ctx context.Context, limit int) ([]*models.Notice, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notice), args.Error(1)
}

func (m *AdminRepoMock) GetBoardConfig(ctx context.Context) (*models.BoardConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BoardConfig), args.Error(1)
}

func (m *AdminRepoMock) UpdateBoardConfig(ctx context.Context, cfg models.BoardConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *AdminRepoMock) CountYoutubers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountRatings(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountComments(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountArticles(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateYoutuber_WritesNotice(t *testing.T) {
	repo := new(AdminRepoMock)
	cache := new(CacheMock)

	repo.On("CreateYoutuber", mock.Anything, mock.MatchedBy(func(y models.Youtuber) bool {
		return y.Name == "Some Channel" && y.Slug == "some-channel"
	}), []int{1, 2}, 9).Return(3, nil)
	repo.On("CreateNotice", mock.Anything, `root: added youtuber "Some Channel"`).Return(nil)

	svc := NewAdminService(repo, cache, newNoopLogger())

	id, err := svc.CreateYoutuber(context.Background(), 9, "root", models.DummyYoutuber{
		Name:        "Some Channel",
		Slug:        "some-channel",
		CategoryIDs: []int{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, id)
	repo.AssertExpectations(t)
}

func TestUpdateYoutuber_InvalidatesCache(t *testing.T) {
	repo := new(AdminRepoMock)
	cache := new(CacheMock)

	repo.On("UpdateYoutuber", mock.Anything, mock.Anything, mock.Anything, 3).Return(1, nil)
	repo.On("CreateNotice", mock.Anything, mock.Anything).Return(nil)
	cache.On("Invalidate", "youtuber:rating:3").Return(nil)
	cache.On("Invalidate", "board").Return(nil)

	svc := NewAdminService(repo, cache, newNoopLogger())

	count, err := svc.UpdateYoutuber(context.Background(), "root", 3, models.DummyYoutuber{
		Name: "Some Channel",
		Slug: "some-channel",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	cache.AssertExpectations(t)
}

func TestUpdateYoutuber_NotFound(t *testing.T) {
	repo := new(AdminRepoMock)
	cache := new(CacheMock)

	repo.On("UpdateYoutuber", mock.Anything, mock.Anything, mock.Anything, 42).Return(0, nil)

	svc := NewAdminService(repo, cache, newNoopLogger())

	_, err := svc.UpdateYoutuber(context.Background(), "root", 42, models.DummyYoutuber{Name: "Ghost", Slug: "ghost"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	repo.AssertNotCalled(t, "CreateNotice", mock.Anything, mock.Anything)
}

func TestRemoveYoutuber_NotFound(t *testing.T) {
	repo := new(AdminRepoMock)
	cache := new(CacheMock)

	repo.On("RemoveYoutuber", mock.Anything, 42).Return(0, nil)

	svc := NewAdminService(repo, cache, newNoopLogger())

	_, err := svc.RemoveYoutuber(context.Background(), "root", 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateYoutuber_NoticeFailureDoesNotBreakOperation(t *testing.T) {
	repo := new(AdminRepoMock)
	cache := new(CacheMock)

	repo.On("CreateYoutuber", mock.Anything, mock.Anything, mock.Anything, 9).Return(3, nil)
	repo.On("CreateNotice", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := NewAdminService(repo, cache, newNoopLogger())

	id, err := svc.CreateYoutuber(context.Background(), 9, "root", models.DummyYoutuber{
		Name: "Some Channel",
		Slug: "some-channel",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestStats(t *testing.T) {
	repo := new(AdminRepoMock)
	cache := new(CacheMock)

	repo.On("CountYoutubers", mock.Anything).Return(10, nil)
	repo.On("CountUsers", mock.Anything).Return(200, nil)
	repo.On("CountRatings", mock.Anything).Return(3000, nil)
	repo.On("CountComments", mock.Anything).Return(400, nil)
	repo.On("CountArticles", mock.Anything).Return(5, nil)

	svc := NewAdminService(repo, cache, newNoopLogger())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Youtubers)
	assert.Equal(t, 200, stats.Users)
	assert.Equal(t, 3000, stats.Ratings)
	assert.Equal(t, 400, stats.Comments)
	assert.Equal(t, 5, stats.Articles)
}

func TestUpdateBoardConfig(t *testing.T) {
	repo := new(AdminRepoMock)
	cache := new(CacheMock)

	repo.On("UpdateBoardConfig", mock.Anything, models.BoardConfig{
		Window:   models.BoardWindowRollingWeek,
		MinVotes: 5,
	}).Return(nil)
	cache.On("Invalidate", "board").Return(nil)
	repo.On("CreateNotice", mock.Anything, "root: changed board settings").Return(nil)

	svc := NewAdminService(repo, cache, newNoopLogger())

	err := svc.UpdateBoardConfig(context.Background(), "root", models.DummyBoardConfig{
		Window:   int(models.BoardWindowRollingWeek),
		MinVotes: 5,
	})
	require.NoError(t, err)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}
