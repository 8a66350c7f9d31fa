package models

import "time"

// Comment комментарий к ютуберу. RatingSnapshot — оценка автора на момент
// написания; nil, если актуальной оценки не было.
type Comment struct {
	ID             int       // Идентификатор
	UserID         int       // Автор
	Username       string    // Имя автора (для выдачи)
	YoutuberID     int       // Ютубер
	Body           string    // Текст комментария
	RatingSnapshot *int      // Оценка автора на момент комментария
	CreatedAt      time.Time // Момент создания
	Positive       int       // Число лайков
	Negative       int       // Число дизлайков
}

// DummyComment используется для приёма комментария из JSON-запроса.
type DummyComment struct {
	Body string `json:"body" validate:"required,max=2000"` // Текст комментария
}

// ArticleComment комментарий к статье. Пишется без ограничения по окну
// и без снимка оценки.
type ArticleComment struct {
	ID        int       // Идентификатор
	UserID    int       // Автор
	Username  string    // Имя автора (для выдачи)
	ArticleID int       // Статья
	Body      string    // Текст комментария
	CreatedAt time.Time // Момент создания
}

// ProfileComment строка списка комментариев в профиле пользователя.
type ProfileComment struct {
	YoutuberName   string    `json:"youtuber_name"`
	YoutuberSlug   string    `json:"youtuber_slug"`
	Body           string    `json:"body"`
	RatingSnapshot *int      `json:"rating_snapshot,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
