// Package notices реализует HTTP-обработчик журнала действий администраторов.
package notices

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler обрабатывает запросы журнала действий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики журнала действий.
type Service interface {
	Notices(ctx context.Context, limit int) ([]*models.Notice, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Журнал действий администраторов
// @Tags Admin
// @Produce  json
// @Param limit query int false "Число записей"
// @Success 200 {object} response.Response "Записи журнала"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /admin/notices [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.notices"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	res, err := h.service.Notices(r.Context(), limit)
	if err != nil {
		log.Error("failed to list notices", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not list notices")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("notices listed", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"notices": res,
	}))
}
