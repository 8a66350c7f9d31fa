package models

import "time"

// Rating одна строка журнала оценок. Строки никогда не удаляются:
// при новой оценке прежняя актуальная строка помечается Current=false,
// а новая вставляется с Current=true.
type Rating struct {
	ID         int       // Идентификатор
	UserID     int       // Автор оценки
	YoutuberID int       // Оцениваемый ютубер
	Score      int       // Оценка от 1 до 5
	Current    bool      // Признак актуальной оценки пары (пользователь, ютубер)
	CreatedAt  time.Time // Момент выставления
}

// DummyRating используется для приёма оценки из JSON-запроса.
type DummyRating struct {
	Score int `json:"score" validate:"required,min=1,max=5"` // Оценка от 1 до 5
}

// RatingSummary агрегированная оценка ютубера: двухуровневое среднее и число голосов.
type RatingSummary struct {
	Average float64 `json:"average"` // Среднее по средним каждого пользователя
	Votes   int     `json:"votes"`   // Суммарное число оценок
}

// ProfileRating строка списка оценок в профиле пользователя.
type ProfileRating struct {
	YoutuberName string    `json:"youtuber_name"`
	YoutuberSlug string    `json:"youtuber_slug"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}
