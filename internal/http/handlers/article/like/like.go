// Package like реализует HTTP-обработчик лайков и дизлайков статей.
package like

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/creatorboard/creator-review/internal/http/middlewarectx"
	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler управляет HTTP-запросами на изменение лайков статей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики лайков статей.
type Service interface {
	Like(ctx context.Context, userID int, slug, intent string) (*models.LikeCounts, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Лайкнуть статью
// @Description Применяет намерение лайка к статье и возвращает свежие счётчики.
// @Tags Articles
// @Accept  json
// @Produce  json
// @Param slug path string true "Slug статьи"
// @Param request body models.DummyLike true "Намерение лайка"
// @Success 200 {object} response.Response "Счётчики лайков"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Статья не найдена"
// @Failure 409 {object} response.ErrorResponse "Лайк уже существует или отсутствует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /articles/{slug}/likes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.like"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLike
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok || userID == 0 {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	slug := chi.URLParam(r, "slug")
	counts, err := h.service.Like(r.Context(), userID, slug, req.Intent)
	if err != nil {
		log.Error("failed to apply like", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not apply like")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("like applied", slog.String("slug", slug), slog.String("intent", req.Intent))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"likes": counts,
	}))
}
