// Package like реализует HTTP-обработчик лайков и дизлайков комментариев.
//
// Handler принимает намерение фронтенда (positive, negative, positive-cancel,
// negative-cancel, positive-change, negative-change), применяет его и возвращает
// свежие счётчики лайков комментария.
package like

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/creatorboard/creator-review/internal/http/middlewarectx"
	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler управляет HTTP-запросами на изменение лайков комментариев.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики лайков комментариев.
type Service interface {
	Like(ctx context.Context, userID, commentID int, intent string) (*models.LikeCounts, error)
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
// @Summary Лайкнуть комментарий
// @Description Применяет намерение лайка к комментарию и возвращает свежие счётчики.
// @Tags Comments
// @Accept  json
// @Produce  json
// @Param id path int true "ID комментария"
// @Param request body models.DummyLike true "Намерение лайка"
// @Success 200 {object} response.Response "Счётчики лайков"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Лайк уже существует или отсутствует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /comments/{id}/likes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.like"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	commentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

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

	counts, err := h.service.Like(r.Context(), userID, commentID, req.Intent)
	if err != nil {
		log.Error("failed to apply like", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not apply like")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("like applied", slog.Int("comment_id", commentID), slog.String("intent", req.Intent))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"likes": counts,
	}))
}
