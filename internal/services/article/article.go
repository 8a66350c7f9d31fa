// Package services содержит бизнес-логику новостных статей: списки,
// просмотр с соседями, лайки и комментарии.
package services

import (
	"context"
	"log/slog"

	"github.com/creatorboard/creator-review/internal/models"
)

// ArticleRepository определяет методы для работы со статьями в хранилище.
type ArticleRepository interface {
	// ListArticles возвращает статьи со счётчиками лайков.
	ListArticles(ctx context.Context, sort models.ArticleSort, limit, offset int) ([]*models.Article, error)
	// GetArticleBySlug возвращает статью по slug.
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	// GetArticleNeighbors возвращает соседние по дате статьи.
	GetArticleNeighbors(ctx context.Context, id int) (*models.ArticleNeighbors, error)
	// CreateArticleComment вставляет комментарий к статье.
	CreateArticleComment(ctx context.Context, userID, articleID int, body string) (int, error)
	// ListArticleComments возвращает комментарии статьи.
	ListArticleComments(ctx context.Context, articleID int, limit, offset int) ([]*models.ArticleComment, error)
}

// ArticleLikeRepository определяет методы для работы с лайками статей.
type ArticleLikeRepository interface {
	CreateArticleLike(ctx context.Context, userID, articleID, sign int) error
	ChangeArticleLike(ctx context.Context, userID, articleID, sign int) error
	CancelArticleLike(ctx context.Context, userID, articleID int) error
	GetArticleLikeCounts(ctx context.Context, articleID int) (*models.LikeCounts, error)
	ListLikedArticles(ctx context.Context, userID int) ([]*models.LikedArticle, error)
}

// ArticleView статья вместе со ссылками на соседей.
type ArticleView struct {
	Article   *models.Article          `json:"article"`
	Neighbors *models.ArticleNeighbors `json:"neighbors"`
}

// ArticleService реализует бизнес-логику статей.
type ArticleService struct {
	repo  ArticleRepository
	likes ArticleLikeRepository
	log   *slog.Logger
}

// NewArticleService создает новый экземпляр ArticleService.
func NewArticleService(repo ArticleRepository, likes ArticleLikeRepository, log *slog.Logger) *ArticleService {
	return &ArticleService{
		repo:  repo,
		likes: likes,
		log:   log,
	}
}

// List возвращает статьи с выбранной сортировкой и пагинацией.
func (s *ArticleService) List(ctx context.Context, sort models.ArticleSort, limit, offset int) ([]*models.Article, error) {
	return s.repo.ListArticles(ctx, sort, limit, offset)
}

// Read возвращает статью по slug вместе со ссылками на соседние по дате статьи.
func (s *ArticleService) Read(ctx context.Context, slug string) (*ArticleView, error) {
	article, err := s.repo.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	neighbors, err := s.repo.GetArticleNeighbors(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	return &ArticleView{Article: article, Neighbors: neighbors}, nil
}

// Like применяет намерение лайка к статье по slug и возвращает свежие счётчики.
func (s *ArticleService) Like(ctx context.Context, userID int, slug, intent string) (*models.LikeCounts, error) {
	article, err := s.repo.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	action, sign, err := models.ParseLikeIntent(intent)
	if err != nil {
		return nil, err
	}

	switch action {
	case models.LikeActionCreate:
		err = s.likes.CreateArticleLike(ctx, userID, article.ID, sign)
	case models.LikeActionChange:
		err = s.likes.ChangeArticleLike(ctx, userID, article.ID, sign)
	case models.LikeActionCancel:
		err = s.likes.CancelArticleLike(ctx, userID, article.ID)
	}
	if err != nil {
		return nil, err
	}

	return s.likes.GetArticleLikeCounts(ctx, article.ID)
}

// LikedArticles возвращает статьи, которые пользователь лайкнул или дизлайкнул.
func (s *ArticleService) LikedArticles(ctx context.Context, userID int) ([]*models.LikedArticle, error) {
	return s.likes.ListLikedArticles(ctx, userID)
}

// CommentCreate добавляет комментарий к статье по slug. Ограничения по окну нет.
func (s *ArticleService) CommentCreate(ctx context.Context, userID int, slug string, req models.DummyComment) (int, error) {
	article, err := s.repo.GetArticleBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.CreateArticleComment(ctx, userID, article.ID, req.Body)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new article comment", slog.Int("id", id), slog.Int("article_id", article.ID))
	return id, nil
}

// CommentList возвращает комментарии статьи по slug, новые сверху.
func (s *ArticleService) CommentList(ctx context.Context, slug string, limit, offset int) ([]*models.ArticleComment, error) {
	article, err := s.repo.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListArticleComments(ctx, article.ID, limit, offset)
}
