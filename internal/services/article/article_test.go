package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/creatorboard/creator-review/internal/models"
)

type ArticleRepoMock struct {
	mock.Mock
}

func (m *ArticleRepoMock) ListArticles(ctx context.Context, sort models.ArticleSort, limit, offset int) ([]*models.Article, error) {
	args := m.Called(ctx, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Article), args.Error(1)
}

func (m *ArticleRepoMock) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *ArticleRepoMock) GetArticleNeighbors(ctx context.Context, id int) (*models.ArticleNeighbors, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleNeighbors), args.Error(1)
}

func (m *ArticleRepoMock) CreateArticleComment(ctx context.Context, userID, articleID int, body string) (int, error) {
	args := m.Called(ctx, userID, articleID, body)
	return args.Int(0), args.Error(1)
}

func (m *ArticleRepoMock) ListArticleComments(ctx context.Context, articleID int, limit, offset int) ([]*models.ArticleComment, error) {
	args := m.Called(ctx, articleID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ArticleComment), args.Error(1)
}

type ArticleLikeRepoMock struct {
	mock.Mock
}

func (m *ArticleLikeRepoMock) CreateArticleLike(ctx context.Context, userID, articleID, sign int) error {
	args := m.Called(ctx, userID, articleID, sign)
	return args.Error(0)
}

func (m *ArticleLikeRepoMock) ChangeArticleLike(ctx context.Context, userID, articleID, sign int) error {
	args := m.Called(ctx, userID, articleID, sign)
	return args.Error(0)
}

func (m *ArticleLikeRepoMock) CancelArticleLike(ctx context.Context, userID, articleID int) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

func (m *ArticleLikeRepoMock) GetArticleLikeCounts(ctx context.Context, articleID int) (*models.LikeCounts, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LikeCounts), args.Error(1)
}

func (m *ArticleLikeRepoMock) ListLikedArticles(ctx context.Context, userID int) ([]*models.LikedArticle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LikedArticle), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRead_WithNeighbors(t *testing.T) {
	repo := new(ArticleRepoMock)
	likes := new(ArticleLikeRepoMock)

	article := &models.Article{ID: 11, Title: "Big News", Slug: "big-news"}
	repo.On("GetArticleBySlug", mock.Anything, "big-news").Return(article, nil)
	repo.On("GetArticleNeighbors", mock.Anything, 11).
		Return(&models.ArticleNeighbors{}, nil)

	svc := NewArticleService(repo, likes, newNoopLogger())

	view, err := svc.Read(context.Background(), "big-news")
	require.NoError(t, err)
	assert.Equal(t, "Big News", view.Article.Title)
	assert.NotNil(t, view.Neighbors)
}

func TestRead_UnknownSlug(t *testing.T) {
	repo := new(ArticleRepoMock)
	likes := new(ArticleLikeRepoMock)

	repo.On("GetArticleBySlug", mock.Anything, "ghost").Return(nil, models.ErrNotFound)

	svc := NewArticleService(repo, likes, newNoopLogger())

	_, err := svc.Read(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLike_ResolvesSlugAndDispatches(t *testing.T) {
	repo := new(ArticleRepoMock)
	likes := new(ArticleLikeRepoMock)

	article := &models.Article{ID: 11, Slug: "big-news"}
	repo.On("GetArticleBySlug", mock.Anything, "big-news").Return(article, nil)
	likes.On("ChangeArticleLike", mock.Anything, 7, 11, models.SignNegative).Return(nil)
	likes.On("GetArticleLikeCounts", mock.Anything, 11).
		Return(&models.LikeCounts{Positive: 2, Negative: 5}, nil)

	svc := NewArticleService(repo, likes, newNoopLogger())

	counts, err := svc.Like(context.Background(), 7, "big-news", "negative-change")
	require.NoError(t, err)
	assert.Equal(t, 5, counts.Negative)
	likes.AssertExpectations(t)
}

func TestLike_Duplicate(t *testing.T) {
	repo := new(ArticleRepoMock)
	likes := new(ArticleLikeRepoMock)

	article := &models.Article{ID: 11, Slug: "big-news"}
	repo.On("GetArticleBySlug", mock.Anything, "big-news").Return(article, nil)
	likes.On("CreateArticleLike", mock.Anything, 7, 11, models.SignPositive).
		Return(models.ErrLikeExists)

	svc := NewArticleService(repo, likes, newNoopLogger())

	_, err := svc.Like(context.Background(), 7, "big-news", "positive")
	assert.ErrorIs(t, err, models.ErrLikeExists)
	likes.AssertNotCalled(t, "GetArticleLikeCounts", mock.Anything, mock.Anything)
}

func TestCommentCreate_NoWindowGate(t *testing.T) {
	repo := new(ArticleRepoMock)
	likes := new(ArticleLikeRepoMock)

	article := &models.Article{ID: 11, Slug: "big-news"}
	repo.On("GetArticleBySlug", mock.Anything, "big-news").Return(article, nil)
	repo.On("CreateArticleComment", mock.Anything, 7, 11, "first").Return(100, nil)
	repo.On("CreateArticleComment", mock.Anything, 7, 11, "second").Return(101, nil)

	svc := NewArticleService(repo, likes, newNoopLogger())

	id, err := svc.CommentCreate(context.Background(), 7, "big-news", models.DummyComment{Body: "first"})
	require.NoError(t, err)
	assert.Equal(t, 100, id)

	// в отличие от комментариев к ютуберам, окна здесь нет
	id, err = svc.CommentCreate(context.Background(), 7, "big-news", models.DummyComment{Body: "second"})
	require.NoError(t, err)
	assert.Equal(t, 101, id)
}

func TestCommentList_ResolvesSlug(t *testing.T) {
	repo := new(ArticleRepoMock)
	likes := new(ArticleLikeRepoMock)

	article := &models.Article{ID: 11, Slug: "big-news"}
	repo.On("GetArticleBySlug", mock.Anything, "big-news").Return(article, nil)
	repo.On("ListArticleComments", mock.Anything, 11, 20, 0).
		Return([]*models.ArticleComment{{ID: 1}, {ID: 2}}, nil)

	svc := NewArticleService(repo, likes, newNoopLogger())

	res, err := svc.CommentList(context.Background(), "big-news", 20, 0)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}
