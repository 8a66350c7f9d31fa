// Package models содержит доменные структуры приложения: ютуберы, категории,
// оценки, комментарии, лайки, статьи и пользователи, а также вспомогательные
// типы для приёма данных из JSON-запросов.
package models

import "errors"

// Доменные ошибки. Сервисы возвращают их как есть, HTTP-слой
// сопоставляет каждой свой статус и сообщение.
var (
	// ErrNotFound запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyRated пользователь уже оценил ютубера в текущем 30-дневном окне.
	ErrAlreadyRated = errors.New("already rated in current window")
	// ErrAlreadyCommented пользователь уже оставил комментарий в текущем 30-дневном окне.
	ErrAlreadyCommented = errors.New("already commented in current window")
	// ErrLikeExists лайк уже существует, повторное создание невозможно.
	ErrLikeExists = errors.New("like already exists")
	// ErrLikeNotFound лайка нет, менять нечего.
	ErrLikeNotFound = errors.New("like does not exist")
	// ErrDuplicate нарушена уникальность (имя пользователя, email или slug заняты).
	ErrDuplicate = errors.New("duplicate value")
	// ErrBanned пользователь заблокирован.
	ErrBanned = errors.New("user is banned")
	// ErrInvalidCredentials неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidCode неверный или истёкший код подтверждения.
	ErrInvalidCode = errors.New("invalid confirmation code")
)
