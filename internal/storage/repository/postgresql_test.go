package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorboard/creator-review/internal/models"
)

func TestCheckDatabaseReady(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	require.NoError(t, CheckDatabaseReady(storage))
}

func TestSaveRating_WindowGate(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userID := factory.CreateUser(t, "rater")
	youtuberID := factory.CreateYoutuber(t, "Some Channel", "some-channel")

	firstID, err := storage.SaveRating(ctx, userID, youtuberID, 3)
	require.NoError(t, err)

	// повторная оценка внутри окна отклоняется
	_, err = storage.SaveRating(ctx, userID, youtuberID, 5)
	assert.ErrorIs(t, err, models.ErrAlreadyRated)

	// после истечения окна новая оценка проходит, старая перестаёт быть актуальной
	factory.BackdateRating(t, firstID, 40)

	secondID, err := storage.SaveRating(ctx, userID, youtuberID, 5)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	assert.Equal(t, 1, factory.CountCurrentRatings(t, userID, youtuberID))

	score, err := storage.GetCurrentScore(ctx, userID, youtuberID)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, 5, *score)
}

func TestGetYoutuberRating_TwoLevelAverage(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userA := factory.CreateUser(t, "usera")
	userB := factory.CreateUser(t, "userb")
	youtuberID := factory.CreateYoutuber(t, "Some Channel", "some-channel")

	// пользователь A: оценки 2 и 4, его среднее 3
	oldID, err := storage.SaveRating(ctx, userA, youtuberID, 2)
	require.NoError(t, err)
	factory.BackdateRating(t, oldID, 40)
	_, err = storage.SaveRating(ctx, userA, youtuberID, 4)
	require.NoError(t, err)

	// пользователь B: одна оценка 3
	_, err = storage.SaveRating(ctx, userB, youtuberID, 3)
	require.NoError(t, err)

	summary, err := storage.GetYoutuberRating(ctx, youtuberID)
	require.NoError(t, err)

	// среднее по средним пользователей, а не по всем строкам журнала
	assert.InDelta(t, 3.0, summary.Average, 0.001)
	assert.Equal(t, 3, summary.Votes)
}

func TestCreateComment_RatingSnapshot(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userID := factory.CreateUser(t, "commenter")
	youtuberID := factory.CreateYoutuber(t, "Some Channel", "some-channel")

	_, err := storage.SaveRating(ctx, userID, youtuberID, 4)
	require.NoError(t, err)

	_, err = storage.CreateComment(ctx, userID, youtuberID, "great content")
	require.NoError(t, err)

	comments, err := storage.ListComments(ctx, youtuberID, models.CommentSortNewest, 10, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.NotNil(t, comments[0].RatingSnapshot)
	assert.Equal(t, 4, *comments[0].RatingSnapshot)
	assert.Equal(t, "commenter", comments[0].Username)
}

func TestCreateComment_NoRatingSnapshot(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userID := factory.CreateUser(t, "silent")
	youtuberID := factory.CreateYoutuber(t, "Some Channel", "some-channel")

	_, err := storage.CreateComment(ctx, userID, youtuberID, "no rating yet")
	require.NoError(t, err)

	comments, err := storage.ListComments(ctx, youtuberID, models.CommentSortNewest, 10, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Nil(t, comments[0].RatingSnapshot)
}

func TestCreateComment_WindowGate(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userID := factory.CreateUser(t, "commenter")
	youtuberID := factory.CreateYoutuber(t, "Some Channel", "some-channel")

	firstID, err := storage.CreateComment(ctx, userID, youtuberID, "first")
	require.NoError(t, err)

	_, err = storage.CreateComment(ctx, userID, youtuberID, "second")
	assert.ErrorIs(t, err, models.ErrAlreadyCommented)

	factory.BackdateComment(t, firstID, 40)

	_, err = storage.CreateComment(ctx, userID, youtuberID, "second")
	require.NoError(t, err)
}

func TestCommentLikes(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	author := factory.CreateUser(t, "author")
	liker := factory.CreateUser(t, "liker")
	youtuberID := factory.CreateYoutuber(t, "Some Channel", "some-channel")

	commentID, err := storage.CreateComment(ctx, author, youtuberID, "like me")
	require.NoError(t, err)

	require.NoError(t, storage.CreateCommentLike(ctx, liker, commentID, models.SignPositive))

	// повторная вставка той же пары отклоняется
	err = storage.CreateCommentLike(ctx, liker, commentID, models.SignNegative)
	assert.ErrorIs(t, err, models.ErrLikeExists)

	counts, err := storage.GetCommentLikeCounts(ctx, commentID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Positive)
	assert.Equal(t, 0, counts.Negative)

	require.NoError(t, storage.ChangeCommentLike(ctx, liker, commentID, models.SignNegative))

	counts, err = storage.GetCommentLikeCounts(ctx, commentID)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Positive)
	assert.Equal(t, 1, counts.Negative)

	require.NoError(t, storage.CancelCommentLike(ctx, liker, commentID))
	// отмена идемпотентна
	require.NoError(t, storage.CancelCommentLike(ctx, liker, commentID))

	// смена знака несуществующего лайка отклоняется
	err = storage.ChangeCommentLike(ctx, liker, commentID, models.SignPositive)
	assert.ErrorIs(t, err, models.ErrLikeNotFound)
}

func TestListLikedComments(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	author := factory.CreateUser(t, "author")
	liker := factory.CreateUser(t, "liker")
	youtuberID := factory.CreateYoutuber(t, "Some Channel", "some-channel")

	commentID, err := storage.CreateComment(ctx, author, youtuberID, "like me")
	require.NoError(t, err)
	require.NoError(t, storage.CreateCommentLike(ctx, liker, commentID, models.SignPositive))

	liked, err := storage.ListLikedComments(ctx, liker)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, commentID, liked[0].CommentID)
	assert.Equal(t, "Some Channel", liked[0].YoutuberName)
	assert.Equal(t, models.SignPositive, liked[0].Sign)
}

func TestBoardConfig(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	cfg, err := storage.GetBoardConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BoardWindowLastMonth, cfg.Window)
	assert.Equal(t, 3, cfg.MinVotes)

	err = storage.UpdateBoardConfig(ctx, models.BoardConfig{
		Window:   models.BoardWindowRollingWeek,
		MinVotes: 1,
	})
	require.NoError(t, err)

	cfg, err = storage.GetBoardConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BoardWindowRollingWeek, cfg.Window)
	assert.Equal(t, 1, cfg.MinVotes)
}

func TestListBoard(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	userA := factory.CreateUser(t, "usera")
	userB := factory.CreateUser(t, "userb")
	first := factory.CreateYoutuber(t, "First Channel", "first-channel")
	second := factory.CreateYoutuber(t, "Second Channel", "second-channel")

	_, err := storage.SaveRating(ctx, userA, first, 4)
	require.NoError(t, err)
	_, err = storage.SaveRating(ctx, userB, first, 3)
	require.NoError(t, err)
	_, err = storage.SaveRating(ctx, userA, second, 5)
	require.NoError(t, err)

	cfg := models.BoardConfig{Window: models.BoardWindowRollingMonth, MinVotes: 2}
	rows, err := storage.ListBoard(ctx, cfg)
	require.NoError(t, err)

	// второй канал отфильтрован порогом голосов
	require.Len(t, rows, 1)
	assert.Equal(t, first, rows[0].YoutuberID)
	assert.InDelta(t, 3.5, rows[0].Average, 0.001)
	assert.Equal(t, 2, rows[0].Votes)

	cfg.MinVotes = 1
	rows, err = storage.ListBoard(ctx, cfg)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second, rows[0].YoutuberID, "higher average should come first")
}
