package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/creatorboard/creator-review/internal/models"
)

// CreatePendingUser сохраняет заявку на регистрацию. Если email или имя
// уже заняты живым пользователем, возвращает ErrDuplicate. Повторная
// заявка с тем же email заменяет прежнюю вместе с кодом.
func (s *Storage) CreatePendingUser(ctx context.Context, pending models.PendingUser) (int, error) {
	const op = "storage.CreatePendingUser"
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

	var taken bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`,
		pending.Email, pending.Username).Scan(&taken)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return 0, models.ErrDuplicate
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM pending_users WHERE email = $1`, pending.Email)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO pending_users (email, username, password_hash, confirm_code)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		pending.Email, pending.Username, pending.PasswordHash, pending.ConfirmCode).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicate
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ConfirmPendingUser переносит заявку в users по коду из письма и
// возвращает созданного пользователя. Неверный код — ErrInvalidCode.
func (s *Storage) ConfirmPendingUser(ctx context.Context, email, code string) (*models.User, error) {
	const op = "storage.ConfirmPendingUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var pending models.PendingUser
	err = tx.QueryRowContext(ctx,
		`SELECT id, email, username, password_hash
		 FROM pending_users
		 WHERE email = $1 AND confirm_code = $2`,
		email, code).Scan(&pending.ID, &pending.Email, &pending.Username, &pending.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrInvalidCode
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		Email:        pending.Email,
		Username:     pending.Username,
		PasswordHash: pending.PasswordHash,
		Role:         "user",
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (email, username, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		user.Email, user.Username, user.PasswordHash, user.Role).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicate
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM pending_users WHERE id = $1`, pending.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, password_hash, role, banned, created_at
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.Role, &u.Banned, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, password_hash, role, banned, created_at
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.Role, &u.Banned, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// CreatePasswordReset сохраняет код восстановления пароля пользователя,
// затирая прежние коды.
func (s *Storage) CreatePasswordReset(ctx context.Context, userID int, code string) error {
	const op = "storage.CreatePasswordReset"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `DELETE FROM password_resets WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO password_resets (user_id, code) VALUES ($1, $2)`, userID, code)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ResetPassword меняет пароль пользователя по коду восстановления.
// Код действует 24 часа; неверный или истёкший код — ErrInvalidCode.
func (s *Storage) ResetPassword(ctx context.Context, email, code, passwordHash string) error {
	const op = "storage.ResetPassword"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var userID int
	err = tx.QueryRowContext(ctx,
		`SELECT u.id
		 FROM password_resets pr
		 JOIN users u ON u.id = pr.user_id
		 WHERE u.email = $1 AND pr.code = $2
		   AND pr.created_at > now() - interval '24 hours'`,
		email, code).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrInvalidCode
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM password_resets WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CountUsers возвращает число пользователей.
func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.CountUsers"
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
