package models

import "fmt"

// Знаки лайка в хранилище.
const (
	SignPositive = 1
	SignNegative = -1
)

// LikeAction вид изменения лайка, полученный из намерения.
type LikeAction int

const (
	// LikeActionCreate вставить новый лайк.
	LikeActionCreate LikeAction = iota
	// LikeActionChange поменять знак существующего лайка.
	LikeActionChange
	// LikeActionCancel снять лайк.
	LikeActionCancel
)

// DummyLike используется для приёма намерения лайка из JSON-запроса.
// Допустимые значения совпадают со значениями, которые шлёт фронтенд.
type DummyLike struct {
	Intent string `json:"intent" validate:"required,oneof=positive negative positive-cancel negative-cancel positive-change negative-change"`
}

// ParseLikeIntent разбирает намерение на действие и знак.
func ParseLikeIntent(intent string) (LikeAction, int, error) {
	switch intent {
	case "positive":
		return LikeActionCreate, SignPositive, nil
	case "negative":
		return LikeActionCreate, SignNegative, nil
	case "positive-change":
		return LikeActionChange, SignPositive, nil
	case "negative-change":
		return LikeActionChange, SignNegative, nil
	case "positive-cancel":
		return LikeActionCancel, SignPositive, nil
	case "negative-cancel":
		return LikeActionCancel, SignNegative, nil
	default:
		return 0, 0, fmt.Errorf("unknown like intent: %q", intent)
	}
}

// LikeCounts свежие счётчики лайков цели, возвращаются после каждого изменения.
type LikeCounts struct {
	Positive int `json:"positive"` // Число лайков
	Negative int `json:"negative"` // Число дизлайков
}

// LikedComment строка списка лайкнутых комментариев в профиле.
type LikedComment struct {
	CommentID    int    `json:"comment_id"`
	YoutuberName string `json:"youtuber_name"`
	Body         string `json:"body"`
	Sign         int    `json:"sign"`
}

// LikedArticle строка списка лайкнутых статей в профиле.
type LikedArticle struct {
	ArticleID int    `json:"article_id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Sign      int    `json:"sign"`
}
