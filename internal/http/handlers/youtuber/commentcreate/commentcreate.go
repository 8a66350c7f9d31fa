// Package commentcreate реализует HTTP-обработчик добавления комментария к ютуберу.
//
// Комментарий сохраняется со снимком актуальной оценки автора. Повторный
// комментарий в 30-дневном окне отклоняется со статусом 409.
package commentcreate

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

// Handler управляет HTTP-запросами на добавление комментариев.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления комментария.
type Service interface {
	Create(ctx context.Context, userID int, slug string, req models.DummyComment) (int, error)
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
// @Summary Прокомментировать ютубера
// @Description Добавляет комментарий со снимком актуальной оценки автора. Возвращает ID записи.
// @Tags Youtubers
// @Accept  json
// @Produce  json
// @Param slug path string true "Slug ютубера"
// @Param request body models.DummyComment true "Текст комментария"
// @Success 200 {object} response.Response "Комментарий создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Ютубер не найден"
// @Failure 409 {object} response.ErrorResponse "Комментарий уже оставлен в текущем окне"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /youtubers/{slug}/comments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.youtuber.commentcreate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyComment
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
	id, err := h.service.Create(r.Context(), userID, slug, req)
	if err != nil {
		log.Error("failed to create comment", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not create comment")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("comment created", slog.Int("id", id), slog.String("slug", slug))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"last_added_id": id,
	}))
}
