// Package services содержит бизнес-логику админки: управление ютуберами,
// категориями и статьями, журнал действий, сводные счётчики и настройки
// таблицы лидеров. Каждое изменение записывается в журнал notices.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/creatorboard/creator-review/internal/models"
)

// AdminRepository определяет методы хранилища, нужные админке.
type AdminRepository interface {
	CreateYoutuber(ctx context.Context, y models.Youtuber, categoryIDs []int, adminID int) (int, error)
	UpdateYoutuber(ctx context.Context, y models.Youtuber, categoryIDs []int, id int) (int, error)
	RemoveYoutuber(ctx context.Context, id int) (int, error)

	CreateCategory(ctx context.Context, c models.Category) (int, error)
	UpdateCategory(ctx context.Context, c models.Category, id int) (int, error)
	RemoveCategory(ctx context.Context, id int) (int, error)

	CreateArticle(ctx context.Context, a models.Article, youtuberIDs []int) (int, error)
	UpdateArticle(ctx context.Context, a models.Article, youtuberIDs []int, id int) (int, error)
	RemoveArticle(ctx context.Context, id int) (int, error)

	CreateNotice(ctx context.Context, body string) error
	ListNotices(ctx context.Context, limit int) ([]*models.Notice, error)

	GetBoardConfig(ctx context.Context) (*models.BoardConfig, error)
	UpdateBoardConfig(ctx context.Context, cfg models.BoardConfig) error

	CountYoutubers(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	CountRatings(ctx context.Context) (int, error)
	CountComments(ctx context.Context) (int, error)
	CountArticles(ctx context.Context) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// AdminService реализует бизнес-логику админки.
type AdminService struct {
	repo  AdminRepository
	cache Cache
	log   *slog.Logger
}

// NewAdminService создает новый экземпляр AdminService.
func NewAdminService(repo AdminRepository, cache Cache, log *slog.Logger) *AdminService {
	return &AdminService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// notice записывает действие администратора в журнал.
// Ошибка журнала не прерывает операцию.
func (s *AdminService) notice(ctx context.Context, admin, format string, args ...any) {
	body := fmt.Sprintf("%s: %s", admin, fmt.Sprintf(format, args...))
	if err := s.repo.CreateNotice(ctx, body); err != nil {
		s.log.Warn("failed to write notice", slog.Any("err", err))
	}
}

// CreateYoutuber добавляет ютубера со стартовой оценкой от администратора.
func (s *AdminService) CreateYoutuber(ctx context.Context, adminID int, adminName string, req models.DummyYoutuber) (int, error) {
	y := models.Youtuber{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Subscribers: req.Subscribers,
		Views:       req.Views,
	}
	id, err := s.repo.CreateYoutuber(ctx, y, req.CategoryIDs, adminID)
	if err != nil {
		return 0, err
	}
	s.notice(ctx, adminName, "added youtuber %q", req.Name)
	return id, nil
}

// UpdateYoutuber обновляет данные ютубера и сбрасывает кеш его оценки.
func (s *AdminService) UpdateYoutuber(ctx context.Context, adminName string, id int, req models.DummyYoutuber) (int, error) {
	y := models.Youtuber{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Subscribers: req.Subscribers,
		Views:       req.Views,
	}
	count, err := s.repo.UpdateYoutuber(ctx, y, req.CategoryIDs, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, models.ErrNotFound
	}
	s.invalidateYoutuber(id)
	s.notice(ctx, adminName, "updated youtuber %q", req.Name)
	return count, nil
}

// RemoveYoutuber удаляет ютубера.
func (s *AdminService) RemoveYoutuber(ctx context.Context, adminName string, id int) (int, error) {
	count, err := s.repo.RemoveYoutuber(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, models.ErrNotFound
	}
	s.invalidateYoutuber(id)
	s.notice(ctx, adminName, "removed youtuber #%d", id)
	return count, nil
}

// CreateCategory добавляет категорию.
func (s *AdminService) CreateCategory(ctx context.Context, adminName string, req models.DummyCategory) (int, error) {
	id, err := s.repo.CreateCategory(ctx, models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return 0, err
	}
	s.notice(ctx, adminName, "added category %q", req.Name)
	return id, nil
}

// UpdateCategory обновляет категорию.
func (s *AdminService) UpdateCategory(ctx context.Context, adminName string, id int, req models.DummyCategory) (int, error) {
	count, err := s.repo.UpdateCategory(ctx, models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, models.ErrNotFound
	}
	s.notice(ctx, adminName, "updated category %q", req.Name)
	return count, nil
}

// RemoveCategory удаляет категорию.
func (s *AdminService) RemoveCategory(ctx context.Context, adminName string, id int) (int, error) {
	count, err := s.repo.RemoveCategory(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, models.ErrNotFound
	}
	s.notice(ctx, adminName, "removed category #%d", id)
	return count, nil
}

// CreateArticle публикует статью.
func (s *AdminService) CreateArticle(ctx context.Context, adminID int, adminName string, req models.DummyArticle) (int, error) {
	a := models.Article{
		Title:    req.Title,
		Slug:     req.Slug,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		AuthorID: adminID,
	}
	id, err := s.repo.CreateArticle(ctx, a, req.YoutuberIDs)
	if err != nil {
		return 0, err
	}
	s.notice(ctx, adminName, "published article %q", req.Title)
	return id, nil
}

// UpdateArticle обновляет статью.
func (s *AdminService) UpdateArticle(ctx context.Context, adminName string, id int, req models.DummyArticle) (int, error) {
	a := models.Article{
		Title:    req.Title,
		Slug:     req.Slug,
		Body:     req.Body,
		ImageURL: req.ImageURL,
	}
	count, err := s.repo.UpdateArticle(ctx, a, req.YoutuberIDs, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, models.ErrNotFound
	}
	s.notice(ctx, adminName, "updated article %q", req.Title)
	return count, nil
}

// RemoveArticle удаляет статью.
func (s *AdminService) RemoveArticle(ctx context.Context, adminName string, id int) (int, error) {
	count, err := s.repo.RemoveArticle(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, models.ErrNotFound
	}
	s.notice(ctx, adminName, "removed article #%d", id)
	return count, nil
}

// Notices возвращает последние записи журнала действий.
func (s *AdminService) Notices(ctx context.Context, limit int) ([]*models.Notice, error) {
	return s.repo.ListNotices(ctx, limit)
}

// Stats возвращает сводные счётчики для панели администратора.
func (s *AdminService) Stats(ctx context.Context) (*models.Stats, error) {
	var result models.Stats
	var err error
	if result.Youtubers, err = s.repo.CountYoutubers(ctx); err != nil {
		return nil, err
	}
	if result.Users, err = s.repo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if result.Ratings, err = s.repo.CountRatings(ctx); err != nil {
		return nil, err
	}
	if result.Comments, err = s.repo.CountComments(ctx); err != nil {
		return nil, err
	}
	if result.Articles, err = s.repo.CountArticles(ctx); err != nil {
		return nil, err
	}
	return &result, nil
}

// BoardConfig возвращает настройки таблицы лидеров.
func (s *AdminService) BoardConfig(ctx context.Context) (*models.BoardConfig, error) {
	return s.repo.GetBoardConfig(ctx)
}

// UpdateBoardConfig сохраняет настройки таблицы лидеров и сбрасывает её кеш.
func (s *AdminService) UpdateBoardConfig(ctx context.Context, adminName string, req models.DummyBoardConfig) error {
	cfg := models.BoardConfig{
		Window:   models.ParseBoardWindow(req.Window),
		MinVotes: req.MinVotes,
	}
	if err := s.repo.UpdateBoardConfig(ctx, cfg); err != nil {
		return err
	}
	if err := s.cache.Invalidate("board"); err != nil {
		s.log.Warn("failed to invalidate board cache", slog.Any("err", err))
	}
	s.notice(ctx, adminName, "changed board settings")
	return nil
}

func (s *AdminService) invalidateYoutuber(id int) {
	cacheKey := fmt.Sprintf("youtuber:rating:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate rating cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if err := s.cache.Invalidate("board"); err != nil {
		s.log.Warn("failed to invalidate board cache", slog.Any("err", err))
	}
}
