// Package rate реализует HTTP-обработчик выставления оценки ютуберу.
//
// Handler принимает JSON с оценкой от 1 до 5, валидирует её, извлекает
// идентификатор пользователя из контекста и возвращает свежую агрегированную
// оценку канала. Повторная оценка в 30-дневном окне отклоняется со статусом 409.
package rate

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

// Handler управляет HTTP-запросами на выставление оценок.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики оценок
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики выставления оценки.
type Service interface {
	Rate(ctx context.Context, userID int, slug string, req models.DummyRating) (*models.RatingSummary, error)
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
// @Summary Оценить ютубера
// @Description Выставляет оценку от 1 до 5. Возвращает свежую агрегированную оценку канала.
// @Tags Youtubers
// @Accept  json
// @Produce  json
// @Param slug path string true "Slug ютубера"
// @Param request body models.DummyRating true "Оценка"
// @Success 200 {object} response.Response "Агрегированная оценка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Ютубер не найден"
// @Failure 409 {object} response.ErrorResponse "Оценка уже выставлена в текущем окне"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /youtubers/{slug}/ratings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.youtuber.rate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRating
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Int("score", req.Score))

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
	summary, err := h.service.Rate(r.Context(), userID, slug, req)
	if err != nil {
		log.Error("failed to rate youtuber", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not rate youtuber")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("youtuber rated", slog.String("slug", slug), slog.Int("score", req.Score))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"rating": summary,
	}))
}
