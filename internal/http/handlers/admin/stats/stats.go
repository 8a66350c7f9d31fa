// Package stats реализует HTTP-обработчик сводных счётчиков панели администратора.
package stats

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

// Handler обрабатывает запросы сводных счётчиков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сводных счётчиков.
type Service interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводные счётчики
// @Description Возвращает число ютуберов, пользователей, оценок, комментариев и статей.
// @Tags Admin
// @Produce  json
// @Success 200 {object} response.Response "Счётчики"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.stats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error("failed to collect stats", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not collect stats")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("stats collected")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"stats": res,
	}))
}
