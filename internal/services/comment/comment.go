// Package services содержит бизнес-логику комментариев ютуберов и их лайков.
package services

import (
	"context"
	"log/slog"

	"github.com/creatorboard/creator-review/internal/models"
)

// CommentRepository определяет методы для работы с комментариями в хранилище.
type CommentRepository interface {
	// CreateComment вставляет комментарий со снимком актуальной оценки автора.
	CreateComment(ctx context.Context, userID, youtuberID int, body string) (int, error)
	// ListComments возвращает комментарии ютубера со счётчиками лайков.
	ListComments(ctx context.Context, youtuberID int, sort models.CommentSort, limit, offset int) ([]*models.Comment, error)
	// ListProfileComments возвращает комментарии пользователя.
	ListProfileComments(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileComment, error)
	// GetYoutuberBySlug возвращает ютубера по slug.
	GetYoutuberBySlug(ctx context.Context, slug string) (*models.Youtuber, error)
}

// LikeRepository определяет методы для работы с лайками комментариев.
type LikeRepository interface {
	CreateCommentLike(ctx context.Context, userID, commentID, sign int) error
	ChangeCommentLike(ctx context.Context, userID, commentID, sign int) error
	CancelCommentLike(ctx context.Context, userID, commentID int) error
	GetCommentLikeCounts(ctx context.Context, commentID int) (*models.LikeCounts, error)
	ListLikedComments(ctx context.Context, userID int) ([]*models.LikedComment, error)
}

// CommentService реализует бизнес-логику комментариев.
type CommentService struct {
	repo  CommentRepository
	likes LikeRepository
	log   *slog.Logger
}

// NewCommentService создает новый экземпляр CommentService.
func NewCommentService(repo CommentRepository, likes LikeRepository, log *slog.Logger) *CommentService {
	return &CommentService{
		repo:  repo,
		likes: likes,
		log:   log,
	}
}

// Create добавляет комментарий к ютуберу по slug и возвращает ID.
// Повторный комментарий в 30-дневном окне отклоняется в хранилище.
func (s *CommentService) Create(ctx context.Context, userID int, slug string, req models.DummyComment) (int, error) {
	youtuber, err := s.repo.GetYoutuberBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.CreateComment(ctx, userID, youtuber.ID, req.Body)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new comment", slog.Int("id", id), slog.Int("youtuber_id", youtuber.ID))
	return id, nil
}

// List возвращает комментарии ютубера по slug с выбранной сортировкой и пагинацией.
func (s *CommentService) List(ctx context.Context, slug string, sort models.CommentSort, limit, offset int) ([]*models.Comment, error) {
	youtuber, err := s.repo.GetYoutuberBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListComments(ctx, youtuber.ID, sort, limit, offset)
}

// Like применяет намерение лайка к комментарию и возвращает свежие счётчики.
func (s *CommentService) Like(ctx context.Context, userID, commentID int, intent string) (*models.LikeCounts, error) {
	action, sign, err := models.ParseLikeIntent(intent)
	if err != nil {
		return nil, err
	}

	switch action {
	case models.LikeActionCreate:
		err = s.likes.CreateCommentLike(ctx, userID, commentID, sign)
	case models.LikeActionChange:
		err = s.likes.ChangeCommentLike(ctx, userID, commentID, sign)
	case models.LikeActionCancel:
		err = s.likes.CancelCommentLike(ctx, userID, commentID)
	}
	if err != nil {
		return nil, err
	}

	return s.likes.GetCommentLikeCounts(ctx, commentID)
}

// LikedComments возвращает комментарии, которые пользователь лайкнул или дизлайкнул.
func (s *CommentService) LikedComments(ctx context.Context, userID int) ([]*models.LikedComment, error) {
	return s.likes.ListLikedComments(ctx, userID)
}

// ProfileComments возвращает комментарии пользователя с выбранной сортировкой.
func (s *CommentService) ProfileComments(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileComment, error) {
	return s.repo.ListProfileComments(ctx, userID, sort)
}
