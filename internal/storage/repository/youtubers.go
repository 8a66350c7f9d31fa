package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/creatorboard/creator-review/internal/models"
)

// CreateYoutuber вставляет нового ютубера вместе со связями категорий
// и стартовой оценкой 3 от создавшего администратора, возвращает ID.
func (s *Storage) CreateYoutuber(ctx context.Context, y models.Youtuber, categoryIDs []int, adminID int) (int, error) {
	const op = "storage.CreateYoutuber"
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

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO youtubers (name, slug, description, photo_url, subscribers, views)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		y.Name, y.Slug, y.Description, y.PhotoURL, y.Subscribers, y.Views).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicate
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, categoryID := range categoryIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO youtuber_categories (youtuber_id, category_id) VALUES ($1, $2)`,
			newID, categoryID)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	// Стартовая оценка, чтобы новый канал сразу имел рейтинг.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO ratings (user_id, youtuber_id, score, current) VALUES ($1, $2, 3, true)`,
		adminID, newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateYoutuber обновляет данные ютубера и пересобирает связи категорий,
// возвращает количество изменённых строк.
func (s *Storage) UpdateYoutuber(ctx context.Context, y models.Youtuber, categoryIDs []int, id int) (int, error) {
	const op = "storage.UpdateYoutuber"
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

	result, err := tx.ExecContext(ctx,
		`UPDATE youtubers
		 SET name = $1, slug = $2, description = $3, photo_url = $4, subscribers = $5, views = $6
		 WHERE id = $7`,
		y.Name, y.Slug, y.Description, y.PhotoURL, y.Subscribers, y.Views, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicate
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM youtuber_categories WHERE youtuber_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	for _, categoryID := range categoryIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO youtuber_categories (youtuber_id, category_id) VALUES ($1, $2)`,
			id, categoryID)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveYoutuber удаляет ютубера по ID и возвращает количество удалённых строк.
// Связанные оценки, комментарии и связи категорий удаляются каскадно.
func (s *Storage) RemoveYoutuber(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveYoutuber"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM youtubers WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// GetYoutuberBySlug возвращает ютубера по slug.
func (s *Storage) GetYoutuberBySlug(ctx context.Context, slug string) (*models.Youtuber, error) {
	const op = "storage.GetYoutuberBySlug"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, slug, description, photo_url, subscribers, views, created_at
			  FROM youtubers
			  WHERE slug = $1`
	var result models.Youtuber
	row := s.DB.QueryRowContext(ctx, query, slug)
	if err := row.Scan(&result.ID, &result.Name, &result.Slug, &result.Description,
		&result.PhotoURL, &result.Subscribers, &result.Views, &result.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListYoutubersByCategory возвращает ютуберов категории с выбранной
// сортировкой и пагинацией. Рейтинг считается двухуровневым средним.
func (s *Storage) ListYoutubersByCategory(ctx context.Context, categoryID int, sort models.CategorySort, limit, offset int) ([]*models.Youtuber, error) {
	const op = "storage.ListYoutubersByCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var order string
	switch sort {
	case models.CategorySortSubscribers:
		order = "y.subscribers DESC, y.name ASC"
	case models.CategorySortName:
		order = "y.name ASC"
	default:
		order = "rating DESC, y.name ASC"
	}

	query := fmt.Sprintf(
		`SELECT y.id, y.name, y.slug, y.description, y.photo_url, y.subscribers, y.views, y.created_at,
		        COALESCE(AVG(per_user.user_avg), 0) AS rating,
		        COALESCE(SUM(per_user.cnt), 0) AS votes
		 FROM youtubers y
		 JOIN youtuber_categories yc ON yc.youtuber_id = y.id
		 LEFT JOIN (
		     SELECT youtuber_id, user_id, AVG(score) AS user_avg, COUNT(*) AS cnt
		     FROM ratings
		     GROUP BY youtuber_id, user_id
		 ) per_user ON per_user.youtuber_id = y.id
		 WHERE yc.category_id = $1
		 GROUP BY y.id
		 ORDER BY %s
		 LIMIT $2 OFFSET $3`, order)
	rows, err := s.DB.QueryContext(ctx, query, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Youtuber
	for rows.Next() {
		var item models.Youtuber
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &item.Description, &item.PhotoURL,
			&item.Subscribers, &item.Views, &item.CreatedAt, &item.Rating, &item.Votes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListCategoriesForYoutuber возвращает категории ютубера.
func (s *Storage) ListCategoriesForYoutuber(ctx context.Context, youtuberID int) ([]*models.Category, error) {
	const op = "storage.ListCategoriesForYoutuber"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.name, c.slug, c.description
			  FROM categories c
			  JOIN youtuber_categories yc ON yc.category_id = c.id
			  WHERE yc.youtuber_id = $1
			  ORDER BY c.name`
	rows, err := s.DB.QueryContext(ctx, query, youtuberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Category
	for rows.Next() {
		var item models.Category
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &item.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountYoutubers возвращает число ютуберов.
func (s *Storage) CountYoutubers(ctx context.Context) (int, error) {
	const op = "storage.CountYoutubers"
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM youtubers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
