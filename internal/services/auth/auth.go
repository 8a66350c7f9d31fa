// Package services содержит логику бизнес-уровня для регистрации,
// подтверждения, входа и восстановления пароля пользователей.
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/creatorboard/creator-review/internal/lib/jwt"
	"github.com/creatorboard/creator-review/internal/lib/password"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreatePendingUser сохраняет заявку на регистрацию.
	CreatePendingUser(ctx context.Context, pending models.PendingUser) (int, error)
	// ConfirmPendingUser переносит заявку в users по коду из письма.
	ConfirmPendingUser(ctx context.Context, email, code string) (*models.User, error)
	// GetUserByUsername возвращает пользователя по имени.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// CreatePasswordReset сохраняет код восстановления пароля.
	CreatePasswordReset(ctx context.Context, userID int, code string) error
	// ResetPassword меняет пароль по коду восстановления.
	ResetPassword(ctx context.Context, email, code, passwordHash string) error
}

// MailPublisher публикует почтовые события в очередь.
type MailPublisher interface {
	PublishConfirm(message models.ConfirmMail) error
	PublishReset(message models.ResetMail) error
}

// AuthService отвечает за регистрацию, вход и восстановление пароля.
type AuthService struct {
	users    UserRepository
	mail     MailPublisher
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, mail MailPublisher, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		mail:     mail,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает заявку на регистрацию и ставит в очередь письмо
// с кодом подтверждения. Пользователь появится в users только после
// подтверждения кода.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegister) error {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return err
	}
	code := uuid.New().String()
	pending := models.PendingUser{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashed,
		ConfirmCode:  code,
	}
	if _, err := s.users.CreatePendingUser(ctx, pending); err != nil {
		return err
	}

	if err := s.mail.PublishConfirm(models.ConfirmMail{
		Email:    req.Email,
		Username: req.Username,
		Code:     code,
	}); err != nil {
		s.log.Error("failed to publish confirm mail", sl.Err(err))
		return err
	}
	s.log.Info("registration pending", slog.String("username", req.Username))
	return nil
}

// Confirm завершает регистрацию по коду из письма и возвращает JWT.
func (s *AuthService) Confirm(ctx context.Context, req models.DummyConfirm) (string, error) {
	user, err := s.users.ConfirmPendingUser(ctx, req.Email, req.Code)
	if err != nil {
		return "", err
	}
	s.log.Info("registration confirmed", slog.String("username", user.Username))
	return s.jwtMaker.GenerateToken(user.ID, user.Username, user.Role)
}

// Login проверяет пароль пользователя и генерирует JWT.
// Заблокированный пользователь получает ErrBanned.
func (s *AuthService) Login(ctx context.Context, req models.DummyLogin) (token, role string, err error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", "", models.ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, req.Password); err != nil {
		return "", "", models.ErrInvalidCredentials
	}
	if user.Banned {
		return "", "", models.ErrBanned
	}
	token, err = s.jwtMaker.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// RequestReset создает код восстановления пароля и ставит в очередь письмо.
// Для неизвестного email молча завершается успехом, чтобы не раскрывать
// существование адреса.
func (s *AuthService) RequestReset(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		s.log.Info("reset requested for unknown email")
		return nil
	}
	code := uuid.New().String()
	if err := s.users.CreatePasswordReset(ctx, user.ID, code); err != nil {
		return err
	}
	if err := s.mail.PublishReset(models.ResetMail{
		Email:    user.Email,
		Username: user.Username,
		Code:     code,
	}); err != nil {
		s.log.Error("failed to publish reset mail", sl.Err(err))
		return err
	}
	return nil
}

// ConfirmReset меняет пароль по коду восстановления.
func (s *AuthService) ConfirmReset(ctx context.Context, req models.DummyResetConfirm) error {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return err
	}
	return s.users.ResetPassword(ctx, req.Email, req.Code, hashed)
}
