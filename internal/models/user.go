package models

import "time"

// User зарегистрированный пользователь системы.
type User struct {
	ID           int       // Идентификатор
	Email        string    // Электронная почта (уникальная)
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // Хэш пароля
	Role         string    // Роль пользователя, admin или user
	Banned       bool      // Признак блокировки
	CreatedAt    time.Time // Дата регистрации
}

// PendingUser заявка на регистрацию: живёт до подтверждения кода из письма,
// после чего переносится в users.
type PendingUser struct {
	ID           int       // Идентификатор
	Email        string    // Электронная почта
	Username     string    // Имя пользователя
	PasswordHash string    // Хэш пароля
	ConfirmCode  string    // Код подтверждения из письма
	CreatedAt    time.Time // Момент подачи заявки
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8"`
}

// DummyConfirm используется для приёма кода подтверждения регистрации.
type DummyConfirm struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,uuid"`
}

// DummyLogin используется для приёма данных входа.
type DummyLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DummyResetRequest запрос кода восстановления пароля.
type DummyResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// DummyResetConfirm смена пароля по коду из письма.
type DummyResetConfirm struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required,uuid"`
	Password string `json:"password" validate:"required,min=8"`
}
