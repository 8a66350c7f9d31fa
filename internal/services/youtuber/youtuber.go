// Package services содержит бизнес-логику выдачи ютуберов: карточка
// с агрегированной оценкой, категории и таблица лидеров главной страницы.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/creatorboard/creator-review/internal/models"
)

// YoutuberRepository определяет методы для работы с ютуберами в хранилище.
type YoutuberRepository interface {
	// GetYoutuberBySlug возвращает ютубера по slug.
	GetYoutuberBySlug(ctx context.Context, slug string) (*models.Youtuber, error)
	// GetYoutuberRating возвращает агрегированную оценку ютубера.
	GetYoutuberRating(ctx context.Context, youtuberID int) (*models.RatingSummary, error)
	// ListCategoriesForYoutuber возвращает категории ютубера.
	ListCategoriesForYoutuber(ctx context.Context, youtuberID int) ([]*models.Category, error)
	// ListCategories возвращает все категории.
	ListCategories(ctx context.Context) ([]*models.Category, error)
	// GetCategoryBySlug возвращает категорию по slug.
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	// ListYoutubersByCategory возвращает ютуберов категории.
	ListYoutubersByCategory(ctx context.Context, categoryID int, sort models.CategorySort, limit, offset int) ([]*models.Youtuber, error)
	// GetBoardConfig возвращает настройки таблицы лидеров.
	GetBoardConfig(ctx context.Context) (*models.BoardConfig, error)
	// ListBoard возвращает таблицу лидеров.
	ListBoard(ctx context.Context, cfg models.BoardConfig) ([]*models.BoardRow, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// YoutuberView карточка ютубера для выдачи.
type YoutuberView struct {
	Youtuber   *models.Youtuber      `json:"youtuber"`
	Rating     *models.RatingSummary `json:"rating"`
	Categories []*models.Category    `json:"categories"`
}

// YoutuberService реализует бизнес-логику выдачи ютуберов.
type YoutuberService struct {
	repo  YoutuberRepository
	cache Cache
	log   *slog.Logger
}

// NewYoutuberService создает новый экземпляр YoutuberService.
func NewYoutuberService(repo YoutuberRepository, cache Cache, log *slog.Logger) *YoutuberService {
	return &YoutuberService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Read возвращает карточку ютубера: данные канала, двухуровневую
// среднюю оценку (из кеша или хранилища) и категории.
func (s *YoutuberService) Read(ctx context.Context, slug string) (*YoutuberView, error) {
	youtuber, err := s.repo.GetYoutuberBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var rating *models.RatingSummary
	cacheKey := fmt.Sprintf("youtuber:rating:%d", youtuber.ID)
	found, err := s.cache.Get(cacheKey, &rating)
	if err != nil {
		s.log.Warn("failed to read rating cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if !found {
		rating, err = s.repo.GetYoutuberRating(ctx, youtuber.ID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey, rating, time.Hour); err != nil {
			s.log.Warn("failed to cache rating", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}

	categories, err := s.repo.ListCategoriesForYoutuber(ctx, youtuber.ID)
	if err != nil {
		return nil, err
	}

	return &YoutuberView{
		Youtuber:   youtuber,
		Rating:     rating,
		Categories: categories,
	}, nil
}

// Categories возвращает все категории.
func (s *YoutuberService) Categories(ctx context.Context) ([]*models.Category, error) {
	return s.repo.ListCategories(ctx)
}

// CategoryYoutubers возвращает ютуберов категории по slug с выбранной
// сортировкой и пагинацией.
func (s *YoutuberService) CategoryYoutubers(ctx context.Context, slug string, sort models.CategorySort, limit, offset int) ([]*models.Youtuber, error) {
	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListYoutubersByCategory(ctx, category.ID, sort, limit, offset)
}

// Board возвращает таблицу лидеров главной страницы, используя кеш или хранилище.
func (s *YoutuberService) Board(ctx context.Context) ([]*models.BoardRow, error) {
	var result []*models.BoardRow
	found, err := s.cache.Get("board", &result)
	if err != nil {
		s.log.Warn("failed to read board cache", slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	cfg, err := s.repo.GetBoardConfig(ctx)
	if err != nil {
		return nil, err
	}
	result, err = s.repo.ListBoard(ctx, *cfg)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set("board", result, time.Hour); err != nil {
		s.log.Warn("failed to cache board", slog.Any("err", err))
	}
	return result, nil
}
