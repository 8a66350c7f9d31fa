// Package youtuberremove реализует HTTP-обработчик удаления ютубера.
package youtuberremove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/creatorboard/creator-review/internal/http/middlewarectx"
	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
)

// Handler управляет HTTP-запросами на удаление ютуберов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления ютубера.
type Service interface {
	RemoveYoutuber(ctx context.Context, adminName string, id int) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить ютубера
// @Tags Admin
// @Produce  json
// @Param id path int true "ID ютубера"
// @Success 200 {object} response.Response "Ютубер удалён"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Ютубер не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /admin/youtubers/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.youtuberremove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	adminName, _ := r.Context().Value(middlewarectx.User).(string)

	count, err := h.service.RemoveYoutuber(r.Context(), adminName, id)
	if err != nil {
		log.Error("failed to remove youtuber", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not remove youtuber")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("youtuber removed", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed_count": count,
	}))
}
