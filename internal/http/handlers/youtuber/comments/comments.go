// Package comments реализует HTTP-обработчик списка комментариев ютубера.
package comments

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler обрабатывает запросы списка комментариев ютубера.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка комментариев.
type Service interface {
	List(ctx context.Context, slug string, sort models.CommentSort, limit, offset int) ([]*models.Comment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Комментарии ютубера
// @Description Возвращает комментарии со счётчиками лайков. Сортировка: 0 — новые, 1 — старые, 2 — лучшие, 3 — худшие.
// @Tags Youtubers
// @Produce  json
// @Param slug path string true "Slug ютубера"
// @Param sort query int false "Режим сортировки"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response "Список комментариев"
// @Failure 404 {object} response.ErrorResponse "Ютубер не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /youtubers/{slug}/comments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.youtuber.comments"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sortVal, _ := strconv.Atoi(r.URL.Query().Get("sort"))
	sort := models.ParseCommentSort(sortVal)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	slug := chi.URLParam(r, "slug")
	res, err := h.service.List(r.Context(), slug, sort, limit, offset)
	if err != nil {
		log.Error("failed to list comments", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not list comments")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("comments listed", slog.String("slug", slug), slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"comments":   res,
	}))
}
