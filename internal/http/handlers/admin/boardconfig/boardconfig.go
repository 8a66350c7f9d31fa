// Package boardconfig реализует HTTP-обработчик чтения настроек таблицы лидеров.
package boardconfig

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler обрабатывает запросы чтения настроек таблицы лидеров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики настроек таблицы лидеров.
type Service interface {
	BoardConfig(ctx context.Context) (*models.BoardConfig, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Настройки таблицы лидеров
// @Tags Admin
// @Produce  json
// @Success 200 {object} response.Response "Текущие настройки"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /admin/board [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.boardconfig"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cfg, err := h.service.BoardConfig(r.Context())
	if err != nil {
		log.Error("failed to read board config", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not read board config")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("board config read")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"config": cfg,
	}))
}
