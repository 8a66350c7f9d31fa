// Package youtubercreate реализует HTTP-обработчик добавления ютубера администратором.
//
// Новому каналу сразу выставляется стартовая оценка от администратора,
// чтобы карточка не была пустой до первых пользовательских оценок.
package youtubercreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/creatorboard/creator-review/internal/http/middlewarectx"
	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler управляет HTTP-запросами на добавление ютуберов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления ютубера.
type Service interface {
	CreateYoutuber(ctx context.Context, adminID int, adminName string, req models.DummyYoutuber) (int, error)
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
// @Summary Добавить ютубера
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body models.DummyYoutuber true "Данные ютубера"
// @Success 200 {object} response.Response "Ютубер добавлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Slug уже занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /admin/youtubers [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.youtubercreate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyYoutuber
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

	adminID, _ := r.Context().Value(middlewarectx.UserID).(int)
	adminName, _ := r.Context().Value(middlewarectx.User).(string)

	id, err := h.service.CreateYoutuber(r.Context(), adminID, adminName, req)
	if err != nil {
		log.Error("failed to create youtuber", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not create youtuber")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("youtuber created", slog.Int("id", id), slog.String("name", req.Name))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"last_added_id": id,
	}))
}
