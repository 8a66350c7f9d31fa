// Package read реализует HTTP-обработчик карточки ютубера.
//
// Handler извлекает slug из URL, вызывает бизнес-логику и возвращает данные
// канала вместе с агрегированной оценкой и категориями.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	services "github.com/creatorboard/creator-review/internal/services/youtuber"
)

// Handler обрабатывает запросы на получение карточки ютубера по slug.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения карточки.
type Service interface {
	Read(ctx context.Context, slug string) (*services.YoutuberView, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Карточка ютубера
// @Description Возвращает данные канала, агрегированную оценку и категории.
// @Tags Youtubers
// @Produce  json
// @Param slug path string true "Slug ютубера"
// @Success 200 {object} response.Response "Карточка ютубера"
// @Failure 404 {object} response.ErrorResponse "Ютубер не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /youtubers/{slug} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.youtuber.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		log.Error("missing slug in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing slug in url"))
		return
	}

	view, err := h.service.Read(r.Context(), slug)
	if err != nil {
		log.Error("failed to read youtuber", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not read youtuber")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("youtuber read", slog.String("slug", slug))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"youtuber": view,
	}))
}
