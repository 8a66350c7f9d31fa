// Package read реализует HTTP-обработчик просмотра статьи.
//
// Handler извлекает slug из URL и возвращает статью вместе со ссылками
// на соседние по дате публикации статьи.
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
	services "github.com/creatorboard/creator-review/internal/services/article"
)

// Handler обрабатывает запросы на просмотр статьи по slug.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики просмотра статьи.
type Service interface {
	Read(ctx context.Context, slug string) (*services.ArticleView, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Просмотр статьи
// @Description Возвращает статью и ссылки на соседние по дате публикации.
// @Tags Articles
// @Produce  json
// @Param slug path string true "Slug статьи"
// @Success 200 {object} response.Response "Статья с соседями"
// @Failure 404 {object} response.ErrorResponse "Статья не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /articles/{slug} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	slug := chi.URLParam(r, "slug")
	view, err := h.service.Read(r.Context(), slug)
	if err != nil {
		log.Error("failed to read article", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not read article")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("article read", slog.String("slug", slug))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"article": view,
	}))
}
