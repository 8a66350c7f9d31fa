package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/creatorboard/creator-review/internal/models"
)

// CreateComment вставляет комментарий к ютуберу. В одной транзакции
// проверяется 30-дневное окно и снимается актуальная оценка автора,
// которая сохраняется в rating_snapshot (NULL, если оценки нет).
func (s *Storage) CreateComment(ctx context.Context, userID, youtuberID int, body string) (int, error) {
	const op = "storage.CreateComment"
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

	var commented bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM comments
		     WHERE user_id = $1 AND youtuber_id = $2
		       AND created_at > now() - interval '30 days'
		 )`, userID, youtuberID).Scan(&commented)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if commented {
		return 0, models.ErrAlreadyCommented
	}

	var snapshot sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT score FROM ratings
		 WHERE user_id = $1 AND youtuber_id = $2 AND current`,
		userID, youtuberID).Scan(&snapshot.Int64)
	if err == nil {
		snapshot.Valid = true
	} else if err != sql.ErrNoRows {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO comments (user_id, youtuber_id, body, rating_snapshot)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, youtuberID, body, snapshot).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListComments возвращает комментарии ютубера со счётчиками лайков,
// выбранной сортировкой и пагинацией.
func (s *Storage) ListComments(ctx context.Context, youtuberID int, sort models.CommentSort, limit, offset int) ([]*models.Comment, error) {
	const op = "storage.ListComments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var order string
	switch sort {
	case models.CommentSortOldest:
		order = "c.created_at ASC"
	case models.CommentSortBestRated:
		order = "COALESCE(SUM(l.sign), 0) DESC, c.created_at DESC"
	case models.CommentSortWorstRated:
		order = "COALESCE(SUM(l.sign), 0) ASC, c.created_at DESC"
	default:
		order = "c.created_at DESC"
	}

	query := fmt.Sprintf(
		`SELECT c.id, c.user_id, u.username, c.youtuber_id, c.body, c.rating_snapshot, c.created_at,
		        COALESCE(SUM(CASE WHEN l.sign = 1 THEN 1 ELSE 0 END), 0) AS positive,
		        COALESCE(SUM(CASE WHEN l.sign = -1 THEN 1 ELSE 0 END), 0) AS negative
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 LEFT JOIN comment_likes l ON l.comment_id = c.id
		 WHERE c.youtuber_id = $1
		 GROUP BY c.id, u.username
		 ORDER BY %s
		 LIMIT $2 OFFSET $3`, order)
	rows, err := s.DB.QueryContext(ctx, query, youtuberID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Comment
	for rows.Next() {
		var item models.Comment
		var snapshot sql.NullInt64
		if err := rows.Scan(&item.ID, &item.UserID, &item.Username, &item.YoutuberID, &item.Body,
			&snapshot, &item.CreatedAt, &item.Positive, &item.Negative); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if snapshot.Valid {
			score := int(snapshot.Int64)
			item.RatingSnapshot = &score
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListProfileComments возвращает комментарии пользователя с выбранной сортировкой.
func (s *Storage) ListProfileComments(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileComment, error) {
	const op = "storage.ListProfileComments"
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
		order = "c.rating_snapshot DESC NULLS LAST"
	case models.ProfileSortScoreAsc:
		order = "c.rating_snapshot ASC NULLS LAST"
	case models.ProfileSortOldest:
		order = "c.created_at ASC"
	default:
		order = "c.created_at DESC"
	}

	query := fmt.Sprintf(
		`SELECT y.name, y.slug, c.body, c.rating_snapshot, c.created_at
		 FROM comments c
		 JOIN youtubers y ON y.id = c.youtuber_id
		 WHERE c.user_id = $1
		 ORDER BY %s`, order)
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ProfileComment
	for rows.Next() {
		var item models.ProfileComment
		var snapshot sql.NullInt64
		if err := rows.Scan(&item.YoutuberName, &item.YoutuberSlug, &item.Body, &snapshot, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if snapshot.Valid {
			score := int(snapshot.Int64)
			item.RatingSnapshot = &score
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountComments возвращает число комментариев к ютуберам.
func (s *Storage) CountComments(ctx context.Context) (int, error) {
	const op = "storage.CountComments"
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
