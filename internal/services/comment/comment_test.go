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

type CommentRepoMock struct {
	mock.Mock
}

func (m *CommentRepoMock) CreateComment(ctx context.Context, userID, youtuberID int, body string) (int, error) {
	args := m.Called(ctx, userID, youtuberID, body)
	return args.Int(0), args.Error(1)
}

func (m *CommentRepoMock) ListComments(ctx context.Context, youtuberID int, sort models.CommentSort, limit, offset int) ([]*models.Comment, error) {
	args := m.Called(ctx, youtuberID, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *CommentRepoMock) ListProfileComments(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileComment, error) {
	args := m.Called(ctx, userID, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProfileComment), args.Error(1)
}

func (m *CommentRepoMock) GetYoutuberBySlug(ctx context.Context, slug string) (*models.Youtuber, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Youtuber), args.Error(1)
}

type LikeRepoMock struct {
	mock.Mock
}

func (m *LikeRepoMock) CreateCommentLike(ctx context.Context, userID, commentID, sign int) error {
	args := m.Called(ctx, userID, commentID, sign)
	return args.Error(0)
}

func (m *LikeRepoMock) ChangeCommentLike(ctx context.Context, userID, commentID, sign int) error {
	args := m.Called(ctx, userID, commentID, sign)
	return args.Error(0)
}

func (m *LikeRepoMock) CancelCommentLike(ctx context.Context, userID, commentID int) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

func (m *LikeRepoMock) GetCommentLikeCounts(ctx context.Context, commentID int) (*models.LikeCounts, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LikeCounts), args.Error(1)
}

func (m *LikeRepoMock) ListLikedComments(ctx context.Context, userID int) ([]*models.LikedComment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LikedComment), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreate_Success(t *testing.T) {
	repo := new(CommentRepoMock)
	likes := new(LikeRepoMock)

	repo.On("GetYoutuberBySlug", mock.Anything, "some-channel").
		Return(&models.Youtuber{ID: 3, Slug: "some-channel"}, nil)
	repo.On("CreateComment", mock.Anything, 7, 3, "nice videos").Return(55, nil)

	svc := NewCommentService(repo, likes, newNoopLogger())

	id, err := svc.Create(context.Background(), 7, "some-channel", models.DummyComment{Body: "nice videos"})
	require.NoError(t, err)
	assert.Equal(t, 55, id)
}

func TestCreate_AlreadyCommented(t *testing.T) {
	repo := new(CommentRepoMock)
	likes := new(LikeRepoMock)

	repo.On("GetYoutuberBySlug", mock.Anything, "some-channel").
		Return(&models.Youtuber{ID: 3, Slug: "some-channel"}, nil)
	repo.On("CreateComment", mock.Anything, 7, 3, "again").Return(0, models.ErrAlreadyCommented)

	svc := NewCommentService(repo, likes, newNoopLogger())

	_, err := svc.Create(context.Background(), 7, "some-channel", models.DummyComment{Body: "again"})
	assert.ErrorIs(t, err, models.ErrAlreadyCommented)
}

func TestLike_IntentDispatch(t *testing.T) {
	tests := []struct {
		name      string
		intent    string
		setupMock func(likes *LikeRepoMock)
	}{
		{
			name:   "positive creates like",
			intent: "positive",
			setupMock: func(likes *LikeRepoMock) {
				likes.On("CreateCommentLike", mock.Anything, 7, 55, models.SignPositive).Return(nil)
			},
		},
		{
			name:   "negative creates dislike",
			intent: "negative",
			setupMock: func(likes *LikeRepoMock) {
				likes.On("CreateCommentLike", mock.Anything, 7, 55, models.SignNegative).Return(nil)
			},
		},
		{
			name:   "positive-change flips sign",
			intent: "positive-change",
			setupMock: func(likes *LikeRepoMock) {
				likes.On("ChangeCommentLike", mock.Anything, 7, 55, models.SignPositive).Return(nil)
			},
		},
		{
			name:   "negative-cancel removes like",
			intent: "negative-cancel",
			setupMock: func(likes *LikeRepoMock) {
				likes.On("CancelCommentLike", mock.Anything, 7, 55).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(CommentRepoMock)
			likes := new(LikeRepoMock)
			tt.setupMock(likes)
			likes.On("GetCommentLikeCounts", mock.Anything, 55).
				Return(&models.LikeCounts{Positive: 3, Negative: 1}, nil)

			svc := NewCommentService(repo, likes, newNoopLogger())

			counts, err := svc.Like(context.Background(), 7, 55, tt.intent)
			require.NoError(t, err)
			assert.Equal(t, 3, counts.Positive)
			assert.Equal(t, 1, counts.Negative)
			likes.AssertExpectations(t)
		})
	}
}

func TestLike_UnknownIntent(t *testing.T) {
	repo := new(CommentRepoMock)
	likes := new(LikeRepoMock)

	svc := NewCommentService(repo, likes, newNoopLogger())

	_, err := svc.Like(context.Background(), 7, 55, "super-like")
	assert.Error(t, err)
	likes.AssertNotCalled(t, "GetCommentLikeCounts", mock.Anything, mock.Anything)
}

func TestLike_DuplicateCreate(t *testing.T) {
	repo := new(CommentRepoMock)
	likes := new(LikeRepoMock)

	likes.On("CreateCommentLike", mock.Anything, 7, 55, models.SignPositive).
		Return(models.ErrLikeExists)

	svc := NewCommentService(repo, likes, newNoopLogger())

	_, err := svc.Like(context.Background(), 7, 55, "positive")
	assert.ErrorIs(t, err, models.ErrLikeExists)
}

func TestLike_ChangeMissing(t *testing.T) {
	repo := new(CommentRepoMock)
	likes := new(LikeRepoMock)

	likes.On("ChangeCommentLike", mock.Anything, 7, 55, models.SignNegative).
		Return(models.ErrLikeNotFound)

	svc := NewCommentService(repo, likes, newNoopLogger())

	_, err := svc.Like(context.Background(), 7, 55, "negative-change")
	assert.ErrorIs(t, err, models.ErrLikeNotFound)
}

func TestList_ResolvesSlug(t *testing.T) {
	repo := new(CommentRepoMock)
	likes := new(LikeRepoMock)

	repo.On("GetYoutuberBySlug", mock.Anything, "some-channel").
		Return(&models.Youtuber{ID: 3, Slug: "some-channel"}, nil)
	repo.On("ListComments", mock.Anything, 3, models.CommentSortBestRated, 20, 0).
		Return([]*models.Comment{{ID: 1}, {ID: 2}}, nil)

	svc := NewCommentService(repo, likes, newNoopLogger())

	res, err := svc.List(context.Background(), "some-channel", models.CommentSortBestRated, 20, 0)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}
