// Package show реализует HTTP-обработчик таблицы лидеров главной страницы.
package show

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler обрабатывает запросы таблицы лидеров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики таблицы лидеров.
type Service interface {
	Board(ctx context.Context) ([]*models.BoardRow, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Таблица лидеров
// @Description Возвращает до девяти лучших ютуберов за настроенное временное окно.
// @Tags Board
// @Produce  json
// @Success 200 {object} response.Response "Строки таблицы лидеров"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /board [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.board.show"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rows, err := h.service.Board(r.Context())
	if err != nil {
		log.Error("failed to build board", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not build board")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("board built", slog.Int("rows", len(rows)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"board": rows,
	}))
}
