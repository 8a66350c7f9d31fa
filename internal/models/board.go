package models

import "time"

// BoardWindow режим временного окна таблицы лидеров главной страницы.
type BoardWindow int

const (
	// BoardWindowLastWeek прошлая календарная неделя.
	BoardWindowLastWeek BoardWindow = 0
	// BoardWindowRollingWeek последние 7 дней.
	BoardWindowRollingWeek BoardWindow = 1
	// BoardWindowLastMonth прошлый календарный месяц (по умолчанию).
	BoardWindowLastMonth BoardWindow = 2
	// BoardWindowRollingMonth последние 30 дней.
	BoardWindowRollingMonth BoardWindow = 3
)

// ParseBoardWindow приводит числовое значение к известному режиму.
func ParseBoardWindow(v int) BoardWindow {
	switch BoardWindow(v) {
	case BoardWindowLastWeek, BoardWindowRollingWeek, BoardWindowRollingMonth:
		return BoardWindow(v)
	default:
		return BoardWindowLastMonth
	}
}

// BoardConfig настройки таблицы лидеров, единственная строка в хранилище.
type BoardConfig struct {
	Window   BoardWindow `json:"window"`    // Режим временного окна
	MinVotes int         `json:"min_votes"` // Минимум оценок для попадания в таблицу
}

// DummyBoardConfig используется для приёма настроек таблицы из JSON-запроса админки.
type DummyBoardConfig struct {
	Window   int `json:"window" validate:"min=0,max=3"`
	MinVotes int `json:"min_votes" validate:"min=0"`
}

// BoardRow строка таблицы лидеров.
type BoardRow struct {
	YoutuberID int     `json:"youtuber_id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	PhotoURL   string  `json:"photo_url"`
	Average    float64 `json:"average"`
	Votes      int     `json:"votes"`
}

// Notice запись журнала действий администраторов.
type Notice struct {
	ID        int       `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats сводные счётчики для панели администратора.
type Stats struct {
	Youtubers int `json:"youtubers"`
	Users     int `json:"users"`
	Ratings   int `json:"ratings"`
	Comments  int `json:"comments"`
	Articles  int `json:"articles"`
}
