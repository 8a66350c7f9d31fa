package list

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

// Handler обрабатывает запросы списка новостных статей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка статей.
type Service interface {
	List(ctx context.Context, sort models.ArticleSort, limit, offset int) ([]*models.Article, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список статей
// @Description Возвращает статьи со счётчиками лайков. Сортировка: 0 — новые, 1 — лучшие.
// @Tags Articles
// @Produce  json
// @Param sort query int false "Режим сортировки"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response "Список статей"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sortVal, _ := strconv.Atoi(r.URL.Query().Get("sort"))
	sort := models.ParseArticleSort(sortVal)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	res, err := h.service.List(r.Context(), sort, limit, offset)
	if err != nil {
		log.Error("failed to list articles", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not list articles")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("articles listed", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"articles":   res,
	}))
}
