package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/creatorboard/creator-review/internal/models"
)

// CreateArticle вставляет новую статью вместе со связями ютуберов и возвращает её ID.
func (s *Storage) CreateArticle(ctx context.Context, a models.Article, youtuberIDs []int) (int, error) {
	const op = "storage.CreateArticle"
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
		`INSERT INTO articles (title, slug, body, image_url, author_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.Title, a.Slug, a.Body, a.ImageURL, a.AuthorID).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicate
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, youtuberID := range youtuberIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO article_youtubers (article_id, youtuber_id) VALUES ($1, $2)`,
			newID, youtuberID)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateArticle обновляет статью и пересобирает связи ютуберов,
// возвращает количество изменённых строк.
func (s *Storage) UpdateArticle(ctx context.Context, a models.Article, youtuberIDs []int, id int) (int, error) {
	const op = "storage.UpdateArticle"
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
		`UPDATE articles SET title = $1, slug = $2, body = $3, image_url = $4 WHERE id = $5`,
		a.Title, a.Slug, a.Body, a.ImageURL, id)
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

	_, err = tx.ExecContext(ctx, `DELETE FROM article_youtubers WHERE article_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	for _, youtuberID := range youtuberIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO article_youtubers (article_id, youtuber_id) VALUES ($1, $2)`,
			id, youtuberID)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveArticle удаляет статью по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveArticle(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveArticle"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListArticles возвращает статьи со счётчиками лайков, выбранной
// сортировкой и пагинацией.
func (s *Storage) ListArticles(ctx context.Context, sort models.ArticleSort, limit, offset int) ([]*models.Article, error) {
	const op = "storage.ListArticles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var order string
	switch sort {
	case models.ArticleSortBestRated:
		order = "COALESCE(SUM(l.sign), 0) DESC, a.created_at DESC"
	default:
		order = "a.created_at DESC"
	}

	query := fmt.Sprintf(
		`SELECT a.id, a.title, a.slug, a.body, a.image_url, a.author_id, a.created_at,
		        COALESCE(SUM(CASE WHEN l.sign = 1 THEN 1 ELSE 0 END), 0) AS positive,
		        COALESCE(SUM(CASE WHEN l.sign = -1 THEN 1 ELSE 0 END), 0) AS negative
		 FROM articles a
		 LEFT JOIN article_likes l ON l.article_id = a.id
		 GROUP BY a.id
		 ORDER BY %s
		 LIMIT $1 OFFSET $2`, order)
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Article
	for rows.Next() {
		var item models.Article
		if err := rows.Scan(&item.ID, &item.Title, &item.Slug, &item.Body, &item.ImageURL,
			&item.AuthorID, &item.CreatedAt, &item.Positive, &item.Negative); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetArticleBySlug возвращает статью по slug со счётчиками лайков.
func (s *Storage) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const op = "storage.GetArticleBySlug"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT a.id, a.title, a.slug, a.body, a.image_url, a.author_id, a.created_at,
			         COALESCE(SUM(CASE WHEN l.sign = 1 THEN 1 ELSE 0 END), 0) AS positive,
			         COALESCE(SUM(CASE WHEN l.sign = -1 THEN 1 ELSE 0 END), 0) AS negative
			  FROM articles a
			  LEFT JOIN article_likes l ON l.article_id = a.id
			  WHERE a.slug = $1
			  GROUP BY a.id`
	var result models.Article
	row := s.DB.QueryRowContext(ctx, query, slug)
	if err := row.Scan(&result.ID, &result.Title, &result.Slug, &result.Body, &result.ImageURL,
		&result.AuthorID, &result.CreatedAt, &result.Positive, &result.Negative); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetArticleNeighbors возвращает slug предыдущей и следующей по дате статьи.
func (s *Storage) GetArticleNeighbors(ctx context.Context, id int) (*models.ArticleNeighbors, error) {
	const op = "storage.GetArticleNeighbors"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      COALESCE((SELECT slug FROM articles
			                WHERE created_at < a.created_at
			                ORDER BY created_at DESC LIMIT 1), ''),
			      COALESCE((SELECT slug FROM articles
			                WHERE created_at > a.created_at
			                ORDER BY created_at ASC LIMIT 1), '')
			  FROM articles a
			  WHERE a.id = $1`
	var result models.ArticleNeighbors
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&result.PrevSlug, &result.NextSlug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// CreateArticleComment вставляет комментарий к статье и возвращает его ID.
// Ограничения по окну нет.
func (s *Storage) CreateArticleComment(ctx context.Context, userID, articleID int, body string) (int, error) {
	const op = "storage.CreateArticleComment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO article_comments (user_id, article_id, body)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, articleID, body).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListArticleComments возвращает комментарии статьи, новые сверху.
func (s *Storage) ListArticleComments(ctx context.Context, articleID int, limit, offset int) ([]*models.ArticleComment, error) {
	const op = "storage.ListArticleComments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.user_id, u.username, c.article_id, c.body, c.created_at
			  FROM article_comments c
			  JOIN users u ON u.id = c.user_id
			  WHERE c.article_id = $1
			  ORDER BY c.created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, articleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ArticleComment
	for rows.Next() {
		var item models.ArticleComment
		if err := rows.Scan(&item.ID, &item.UserID, &item.Username, &item.ArticleID,
			&item.Body, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountArticles возвращает число статей.
func (s *Storage) CountArticles(ctx context.Context) (int, error) {
	const op = "storage.CountArticles"
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
