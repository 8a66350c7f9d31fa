// Package show реализует HTTP-обработчик личного кабинета пользователя.
//
// Handler возвращает актуальные оценки и комментарии текущего пользователя
// с выбранной сортировкой: 0 — по имени ютубера, 1 — по оценке (убывание),
// 2 — по оценке (возрастание), 3 — новые, 4 — старые.
package show

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/creatorboard/creator-review/internal/http/middlewarectx"
	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler обрабатывает запросы личного кабинета.
type Handler struct {
	log      *slog.Logger
	ratings  RatingService
	comments CommentService
}

// RatingService описывает интерфейс бизнес-логики оценок профиля.
type RatingService interface {
	ProfileRatings(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileRating, error)
}

// CommentService описывает интерфейс бизнес-логики комментариев профиля.
type CommentService interface {
	ProfileComments(ctx context.Context, userID int, sort models.ProfileSort) ([]*models.ProfileComment, error)
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, ratings RatingService, comments CommentService) *Handler {
	return &Handler{
		log:      log,
		ratings:  ratings,
		comments: comments,
	}
}

// ServeHTTP godoc
// @Summary Личный кабинет
// @Description Возвращает актуальные оценки и комментарии текущего пользователя.
// @Tags Profile
// @Produce  json
// @Param sort query int false "Режим сортировки"
// @Success 200 {object} response.Response "Оценки и комментарии пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.show"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok || userID == 0 {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	sortVal, _ := strconv.Atoi(r.URL.Query().Get("sort"))
	sort := models.ParseProfileSort(sortVal)

	ratings, err := h.ratings.ProfileRatings(r.Context(), userID, sort)
	if err != nil {
		log.Error("failed to list profile ratings", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not list profile ratings")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	comments, err := h.comments.ProfileComments(r.Context(), userID, sort)
	if err != nil {
		log.Error("failed to list profile comments", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not list profile comments")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("profile listed",
		slog.Int("ratings", len(ratings)),
		slog.Int("comments", len(comments)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ratings":  ratings,
		"comments": comments,
	}))
}
