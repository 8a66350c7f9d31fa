package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/creatorboard/creator-review/internal/models"
)

// CreateCategory вставляет новую категорию и возвращает её ID.
func (s *Storage) CreateCategory(ctx context.Context, c models.Category) (int, error) {
	const op = "storage.CreateCategory"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO categories (name, slug, description)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		c.Name, c.Slug, c.Description).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicate
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateCategory обновляет категорию по ID и возвращает количество изменённых строк.
func (s *Storage) UpdateCategory(ctx context.Context, c models.Category, id int) (int, error) {
	const op = "storage.UpdateCategory"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE categories SET name = $1, slug = $2, description = $3 WHERE id = $4`,
		c.Name, c.Slug, c.Description, id)
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
	return int(rowsAffected), nil
}

// RemoveCategory удаляет категорию по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveCategory(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveCategory"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// GetCategoryBySlug возвращает категорию по slug.
func (s *Storage) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const op = "storage.GetCategoryBySlug"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var result models.Category
	row := s.DB.QueryRowContext(ctx,
		`SELECT id, name, slug, description FROM categories WHERE slug = $1`, slug)
	if err := row.Scan(&result.ID, &result.Name, &result.Slug, &result.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListCategories возвращает все категории по алфавиту.
func (s *Storage) ListCategories(ctx context.Context) ([]*models.Category, error) {
	const op = "storage.ListCategories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, slug, description FROM categories ORDER BY name`)
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
