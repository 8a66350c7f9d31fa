package repository

import (
	"context"
	"fmt"

	"github.com/creatorboard/creator-review/internal/models"
)

// GetBoardConfig возвращает настройки таблицы лидеров (единственная строка).
func (s *Storage) GetBoardConfig(ctx context.Context) (*models.BoardConfig, error) {
	const op = "storage.GetBoardConfig"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var result models.BoardConfig
	var window int
	err := s.DB.QueryRowContext(ctx,
		`SELECT window_mode, min_votes FROM board_config WHERE id = 1`).Scan(&window, &result.MinVotes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.Window = models.ParseBoardWindow(window)
	return &result, nil
}

// UpdateBoardConfig сохраняет настройки таблицы лидеров.
func (s *Storage) UpdateBoardConfig(ctx context.Context, cfg models.BoardConfig) error {
	const op = "storage.UpdateBoardConfig"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx,
		`UPDATE board_config SET window_mode = $1, min_votes = $2 WHERE id = 1`,
		int(cfg.Window), cfg.MinVotes)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// boardWindowCondition возвращает SQL-условие на created_at для режима окна.
func boardWindowCondition(window models.BoardWindow) string {
	switch window {
	case models.BoardWindowLastWeek:
		return `r.created_at >= date_trunc('week', now()) - interval '7 days'
		        AND r.created_at < date_trunc('week', now())`
	case models.BoardWindowRollingWeek:
		return `r.created_at >= now() - interval '7 days'`
	case models.BoardWindowRollingMonth:
		return `r.created_at >= now() - interval '30 days'`
	default:
		return `r.created_at >= date_trunc('month', now()) - interval '1 month'
		        AND r.created_at < date_trunc('month', now())`
	}
}

// ListBoard возвращает таблицу лидеров: простое среднее оценок внутри
// окна, минимум голосов из настроек, не больше девяти строк.
func (s *Storage) ListBoard(ctx context.Context, cfg models.BoardConfig) ([]*models.BoardRow, error) {
	const op = "storage.ListBoard"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(
		`SELECT y.id, y.name, y.slug, y.photo_url, AVG(r.score) AS average, COUNT(*) AS votes
		 FROM ratings r
		 JOIN youtubers y ON y.id = r.youtuber_id
		 WHERE %s
		 GROUP BY y.id
		 HAVING COUNT(*) >= $1
		 ORDER BY average DESC, y.name ASC
		 LIMIT 9`, boardWindowCondition(cfg.Window))
	rows, err := s.DB.QueryContext(ctx, query, cfg.MinVotes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.BoardRow
	for rows.Next() {
		var item models.BoardRow
		if err := rows.Scan(&item.YoutuberID, &item.Name, &item.Slug, &item.PhotoURL,
			&item.Average, &item.Votes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateNotice добавляет запись в журнал действий администраторов.
func (s *Storage) CreateNotice(ctx context.Context, body string) error {
	const op = "storage.CreateNotice"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx, `INSERT INTO notices (body) VALUES ($1)`, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListNotices возвращает последние записи журнала, новые сверху.
func (s *Storage) ListNotices(ctx context.Context, limit int) ([]*models.Notice, error) {
	const op = "storage.ListNotices"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, body, created_at FROM notices ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Notice
	for rows.Next() {
		var item models.Notice
		if err := rows.Scan(&item.ID, &item.Body, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
