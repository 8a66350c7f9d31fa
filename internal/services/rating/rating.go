// Package services содержит бизнес-логику работы с оценками ютуберов.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/creatorboard/creator-review/internal/models"
)

// RatingRepository определяет методы для работы с журналом оценок в хранилище.
type RatingRepository interface {
	// SaveRating записывает новую оценку и возвращает её ID.
	SaveRating(ctx context.Context, userID, youtuberID, score int) (int, error)
	// GetYoutuberRating возвращает агрегированную оценку ютубера.
	GetYoutuberRating(ctx context.Context, youtuberID int) (*models.RatingSummary, error)
	// ListProfileRatings возвращает актуальные оценки пользователя.
	ListProfileRatings(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileRating, error)
	// GetYoutuberBySlug возвращает ютубера по slug.
	GetYoutuberBySlug(ctx context.Context, slug string) (*models.Youtuber, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// RatingService реализует бизнес-логику работы с оценками, включая кеширование.
type RatingService struct {
	repo  RatingRepository
	cache Cache
	log   *slog.Logger
}

// NewRatingService создает новый экземпляр RatingService.
func NewRatingService(repo RatingRepository, cache Cache, log *slog.Logger) *RatingService {
	return &RatingService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Rate выставляет оценку ютуберу по slug и возвращает свежую агрегированную
// оценку. Повторная оценка в 30-дневном окне отклоняется в хранилище.
func (s *RatingService) Rate(ctx context.Context, userID int, slug string, req models.DummyRating) (*models.RatingSummary, error) {
	youtuber, err := s.repo.GetYoutuberBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.SaveRating(ctx, userID, youtuber.ID, req.Score)
	if err != nil {
		return nil, err
	}
	s.log.Info("saved new rating", slog.Int("id", id), slog.Int("youtuber_id", youtuber.ID))

	cacheKey := fmt.Sprintf("youtuber:rating:%d", youtuber.ID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate rating cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if err := s.cache.Invalidate("board"); err != nil {
		s.log.Warn("failed to invalidate board cache", slog.Any("err", err))
	}

	return s.Summary(ctx, youtuber.ID)
}

// Summary возвращает агрегированную оценку ютубера, используя кеш или репозиторий.
func (s *RatingService) Summary(ctx context.Context, youtuberID int) (*models.RatingSummary, error) {
	var result *models.RatingSummary
	cacheKey := fmt.Sprintf("youtuber:rating:%d", youtuberID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read rating cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetYoutuberRating(ctx, youtuberID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache rating", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// ProfileRatings возвращает актуальные оценки пользователя с выбранной сортировкой.
func (s *RatingService) ProfileRatings(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileRating, error) {
	return s.repo.ListProfileRatings(ctx, userID, sort)
}
