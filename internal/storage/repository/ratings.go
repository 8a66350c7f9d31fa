package repository

import (
	"context"
	"fmt"

	"github.com/creatorboard/creator-review/internal/models"
)

// SaveRating записывает новую оценку в журнал. В одной транзакции проверяется
// 30-дневное окно, прежняя актуальная строка пары (пользователь, ютубер)
// помечается неактуальной, затем вставляется новая актуальная строка.
// Частичный уникальный индекс страхует инвариант единственной актуальной
// оценки при конкурентных запросах.
func (s *Storage) SaveRating(ctx context.Context, userID, youtuberID, score int) (int, error) {
	const op = "storage.SaveRating"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var rated bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM ratings
		     WHERE user_id = $1 AND youtuber_id = $2
		       AND created_at > now() - interval '30 days'
		 )`, userID, youtuberID).Scan(&rated)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rated {
		return 0, models.ErrAlreadyRated
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE ratings SET current = false
		 WHERE user_id = $1 AND youtuber_id = $2 AND current`,
		userID, youtuberID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO ratings (user_id, youtuber_id, score, current)
		 VALUES ($1, $2, $3, true)
		 RETURNING id`,
		userID, youtuberID, score).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrAlreadyRated
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetYoutuberRating возвращает двухуровневую среднюю оценку ютубера:
// внутренний запрос усредняет все оценки каждого пользователя,
// внешний усредняет эти средние. Votes — общее число строк журнала.
func (s *Storage) GetYoutuberRating(ctx context.Context, youtuberID int) (*models.RatingSummary, error) {
	const op = "storage.GetYoutuberRating"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(AVG(user_avg), 0), COALESCE(SUM(cnt), 0)
			  FROM (
			      SELECT AVG(score) AS user_avg, COUNT(*) AS cnt
			      FROM ratings
			      WHERE youtuber_id = $1
			      GROUP BY user_id
			  ) per_user`
	var result models.RatingSummary
	if err := s.DB.QueryRowContext(ctx, query, youtuberID).Scan(&result.Average, &result.Votes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetCurrentScore возвращает актуальную оценку пользователя для ютубера.
// Если актуальной оценки нет, возвращает nil.
func (s *Storage) GetCurrentScore(ctx context.Context, userID, youtuberID int) (*int, error) {
	const op = "storage.GetCurrentScore"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT score FROM ratings
		 WHERE user_id = $1 AND youtuber_id = $2 AND current`,
		userID, youtuberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, nil
	}
	var score int
	if err := rows.Scan(&score); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &score, nil
}

// ListProfileRatings возвращает актуальные оценки пользователя с выбранной сортировкой.
func (s *Storage) ListProfileRatings(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileRating, error) {
	const op = "storage.ListProfileRatings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var order string
	switch sort {
	case models.ProfileSortName:
		order = "y.name ASC"
	case models.ProfileSortScoreDesc:
		order = "r.score DESC, y.name ASC"
	case models.ProfileSortScoreAsc:
		order = "r.score ASC, y.name ASC"
	case models.ProfileSortOldest:
		order = "r.created_at ASC"
	default:
		order = "r.created_at DESC"
	}

	query := fmt.Sprintf(
		`SELECT y.name, y.slug, r.score, r.created_at
		 FROM ratings r
		 JOIN youtubers y ON y.id = r.youtuber_id
		 WHERE r.user_id = $1 AND r.current
		 ORDER BY %s`, order)
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ProfileRating
	for rows.Next() {
		var item models.ProfileRating
		if err := rows.Scan(&item.YoutuberName, &item.YoutuberSlug, &item.Score, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountRatings возвращает общее число строк журнала оценок.
func (s *Storage) CountRatings(ctx context.Context) (int, error) {
	const op = "storage.CountRatings"
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
