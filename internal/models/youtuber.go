package models

import "time"

// Youtuber основная модель ютубера, используемая в бизнес-логике и хранилище.
// Поля Rating и Votes заполняются агрегирующими запросами и не хранятся в таблице.
type Youtuber struct {
	ID          int       // Идентификатор
	Name        string    // Отображаемое имя канала
	Slug        string    // Уникальный фрагмент URL
	Description string    // Описание канала
	PhotoURL    string    // Ссылка на фотографию
	Subscribers int64     // Число подписчиков
	Views       int64     // Суммарное число просмотров
	CreatedAt   time.Time // Дата добавления
	Rating      float64   // Средняя оценка (двухуровневое среднее)
	Votes       int       // Общее число учтённых оценок
}

// DummyYoutuber используется для приёма данных ютубера из JSON-запроса
// админки, прежде чем конвертировать их в Youtuber.
type DummyYoutuber struct {
	Name        string `json:"name" validate:"required"`         // Имя канала
	Slug        string `json:"slug" validate:"required"`         // Фрагмент URL
	Description string `json:"description"`                      // Описание
	PhotoURL    string `json:"photo_url"`                        // Ссылка на фото
	Subscribers int64  `json:"subscribers" validate:"min=0"`     // Подписчики
	Views       int64  `json:"views" validate:"min=0"`           // Просмотры
	CategoryIDs []int  `json:"category_ids" validate:"required"` // Категории канала
}

// Category категория ютуберов.
type Category struct {
	ID          int    // Идентификатор
	Name        string // Название
	Slug        string // Уникальный фрагмент URL
	Description string // Описание
}

// DummyCategory используется для приёма данных категории из JSON-запроса админки.
type DummyCategory struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
}
