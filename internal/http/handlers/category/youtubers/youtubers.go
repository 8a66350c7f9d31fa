// Package youtubers реализует HTTP-обработчик списка ютуберов категории.
package youtubers

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

// Handler обрабатывает запросы списка ютуберов категории.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выдачи ютуберов категории.
type Service interface {
	CategoryYoutubers(ctx context.Context, slug string, sort models.CategorySort, limit, offset int) ([]*models.Youtuber, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Ютуберы категории
// @Description Возвращает ютуберов категории. Сортировка: 0 — по оценке, 1 — по подписчикам, 2 — по имени.
// @Tags Categories
// @Produce  json
// @Param slug path string true "Slug категории"
// @Param sort query int false "Режим сортировки"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response "Список ютуберов"
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /categories/{slug}/youtubers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.youtubers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sortVal, _ := strconv.Atoi(r.URL.Query().Get("sort"))
	sort := models.ParseCategorySort(sortVal)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	slug := chi.URLParam(r, "slug")
	res, err := h.service.CategoryYoutubers(r.Context(), slug, sort, limit, offset)
	if err != nil {
		log.Error("failed to list category youtubers", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not list youtubers")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("category youtubers listed", slog.String("slug", slug), slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"youtubers":  res,
	}))
}
