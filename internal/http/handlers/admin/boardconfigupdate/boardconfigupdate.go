// Package boardconfigupdate реализует HTTP-обработчик смены настроек таблицы лидеров.
//
// Режим окна: 0 — прошлая неделя, 1 — последние 7 дней, 2 — прошлый месяц,
// 3 — последние 30 дней. Неизвестное значение приводится к режиму по умолчанию.
package boardconfigupdate

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

// Handler управляет HTTP-запросами на смену настроек таблицы лидеров.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены настроек таблицы лидеров.
type Service interface {
	UpdateBoardConfig(ctx context.Context, adminName string, req models.DummyBoardConfig) error
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
// @Summary Сменить настройки таблицы лидеров
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body models.DummyBoardConfig true "Режим окна и минимум голосов"
// @Success 200 {object} response.Response "Настройки сохранены"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /admin/board [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.boardconfigupdate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBoardConfig
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

	adminName, _ := r.Context().Value(middlewarectx.User).(string)

	if err := h.service.UpdateBoardConfig(r.Context(), adminName, req); err != nil {
		log.Error("failed to update board config", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not update board config")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("board config updated", slog.Int("window", req.Window), slog.Int("min_votes", req.MinVotes))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "board config updated",
	}))
}
