package models

import "time"

// Article новостная статья.
type Article struct {
	ID        int       // Идентификатор
	Title     string    // Заголовок
	Slug      string    // Уникальный фрагмент URL
	Body      string    // Текст статьи
	ImageURL  string    // Ссылка на изображение
	AuthorID  int       // Автор (администратор)
	CreatedAt time.Time // Дата публикации
	Positive  int       // Число лайков
	Negative  int       // Число дизлайков
}

// ArticleNeighbors ссылки на соседние по дате статьи.
// Пустой slug означает, что соседа нет.
type ArticleNeighbors struct {
	PrevSlug string `json:"prev_slug,omitempty"`
	NextSlug string `json:"next_slug,omitempty"`
}

// DummyArticle используется для приёма данных статьи из JSON-запроса админки.
type DummyArticle struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Body        string `json:"body" validate:"required"`
	ImageURL    string `json:"image_url"`
	YoutuberIDs []int  `json:"youtuber_ids"` // Ютуберы, упомянутые в статье
}
