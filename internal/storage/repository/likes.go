package repository

import (
	"context"
	"fmt"

	"github.com/creatorboard/creator-review/internal/models"
)

// CreateCommentLike вставляет лайк комментария. Уникальный индекс пары
// (пользователь, комментарий) делает вставку идемпотентной: если строка
// уже есть, возвращается ErrLikeExists.
func (s *Storage) CreateCommentLike(ctx context.Context, userID, commentID, sign int) error {
	const op = "storage.CreateCommentLike"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`INSERT INTO comment_likes (user_id, comment_id, sign)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, comment_id) DO NOTHING`,
		userID, commentID, sign)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return models.ErrLikeExists
	}
	return nil
}

// ChangeCommentLike меняет знак существующего лайка комментария.
// Если лайка нет, возвращается ErrLikeNotFound.
func (s *Storage) ChangeCommentLike(ctx context.Context, userID, commentID, sign int) error {
	const op = "storage.ChangeCommentLike"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE comment_likes SET sign = $3 WHERE user_id = $1 AND comment_id = $2`,
		userID, commentID, sign)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return models.ErrLikeNotFound
	}
	return nil
}

// CancelCommentLike снимает лайк комментария. Операция идемпотентна.
func (s *Storage) CancelCommentLike(ctx context.Context, userID, commentID int) error {
	const op = "storage.CancelCommentLike"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx,
		`DELETE FROM comment_likes WHERE user_id = $1 AND comment_id = $2`,
		userID, commentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetCommentLikeCounts возвращает свежие счётчики лайков комментария.
func (s *Storage) GetCommentLikeCounts(ctx context.Context, commentID int) (*models.LikeCounts, error) {
	const op = "storage.GetCommentLikeCounts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(CASE WHEN sign = 1 THEN 1 ELSE 0 END), 0) AS positive,
			         COALESCE(SUM(CASE WHEN sign = -1 THEN 1 ELSE 0 END), 0) AS negative
			  FROM comment_likes
			  WHERE comment_id = $1`
	var result models.LikeCounts
	if err := s.DB.QueryRowContext(ctx, query, commentID).Scan(&result.Positive, &result.Negative); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// CreateArticleLike вставляет лайк статьи, см. CreateCommentLike.
func (s *Storage) CreateArticleLike(ctx context.Context, userID, articleID, sign int) error {
	const op = "storage.CreateArticleLike"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`INSERT INTO article_likes (user_id, article_id, sign)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, article_id) DO NOTHING`,
		userID, articleID, sign)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return models.ErrLikeExists
	}
	return nil
}

// ChangeArticleLike меняет знак существующего лайка статьи.
func (s *Storage) ChangeArticleLike(ctx context.Context, userID, articleID, sign int) error {
	const op = "storage.ChangeArticleLike"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE article_likes SET sign = $3 WHERE user_id = $1 AND article_id = $2`,
		userID, articleID, sign)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return models.ErrLikeNotFound
	}
	return nil
}

// CancelArticleLike снимает лайк статьи. Операция идемпотентна.
func (s *Storage) CancelArticleLike(ctx context.Context, userID, articleID int) error {
	const op = "storage.CancelArticleLike"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx,
		`DELETE FROM article_likes WHERE user_id = $1 AND article_id = $2`,
		userID, articleID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetArticleLikeCounts возвращает свежие счётчики лайков статьи.
func (s *Storage) GetArticleLikeCounts(ctx context.Context, articleID int) (*models.LikeCounts, error) {
	const op = "storage.GetArticleLikeCounts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(CASE WHEN sign = 1 THEN 1 ELSE 0 END), 0) AS positive,
			         COALESCE(SUM(CASE WHEN sign = -1 THEN 1 ELSE 0 END), 0) AS negative
			  FROM article_likes
			  WHERE article_id = $1`
	var result models.LikeCounts
	if err := s.DB.QueryRowContext(ctx, query, articleID).Scan(&result.Positive, &result.Negative); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListLikedComments возвращает комментарии, отмеченные пользователем.
func (s *Storage) ListLikedComments(ctx context.Context, userID int) ([]*models.LikedComment, error) {
	const op = "storage.ListLikedComments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, y.name, c.body, l.sign
			  FROM comment_likes l
			  JOIN comments c ON c.id = l.comment_id
			  JOIN youtubers y ON y.id = c.youtuber_id
			  WHERE l.user_id = $1
			  ORDER BY l.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.LikedComment
	for rows.Next() {
		var item models.LikedComment
		if err := rows.Scan(&item.CommentID, &item.YoutuberName, &item.Body, &item.Sign); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListLikedArticles возвращает статьи, отмеченные пользователем.
func (s *Storage) ListLikedArticles(ctx context.Context, userID int) ([]*models.LikedArticle, error) {
	const op = "storage.ListLikedArticles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT a.id, a.title, a.slug, l.sign
			  FROM article_likes l
			  JOIN articles a ON a.id = l.article_id
			  WHERE l.user_id = $1
			  ORDER BY l.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.LikedArticle
	for rows.Next() {
		var item models.LikedArticle
		if err := rows.Scan(&item.ArticleID, &item.Title, &item.Slug, &item.Sign); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
