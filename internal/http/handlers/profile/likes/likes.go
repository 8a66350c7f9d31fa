// Package likes реализует HTTP-обработчик списка лайкнутого в личном кабинете.
package likes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/creatorboard/creator-review/internal/http/middlewarectx"
	"github.com/creatorboard/creator-review/internal/http/response"
	"github.com/creatorboard/creator-review/internal/lib/sl"
	"github.com/creatorboard/creator-review/internal/models"
)

// Handler обрабатывает запросы списка лайкнутых комментариев и статей.
type Handler struct {
	log      *slog.Logger
	comments CommentService
	articles ArticleService
}

// CommentService описывает интерфейс бизнес-логики лайкнутых комментариев.
type CommentService interface {
	LikedComments(ctx context.Context, userID int) ([]*models.LikedComment, error)
}

// ArticleService описывает интерфейс бизнес-логики лайкнутых статей.
type ArticleService interface {
	LikedArticles(ctx context.Context, userID int) ([]*models.LikedArticle, error)
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, comments CommentService, articles ArticleService) *Handler {
	return &Handler{
		log:      log,
		comments: comments,
		articles: articles,
	}
}

// ServeHTTP godoc
// @Summary Лайкнутое пользователем
// @Description Возвращает комментарии и статьи, которые пользователь лайкнул или дизлайкнул.
// @Tags Profile
// @Produce  json
// @Success 200 {object} response.Response "Лайкнутые комментарии и статьи"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /profile/likes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.likes"

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

	comments, err := h.comments.LikedComments(r.Context(), userID)
	if err != nil {
		log.Error("failed to list liked comments", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not list liked comments")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	articles, err := h.articles.LikedArticles(r.Context(), userID)
	if err != nil {
		log.Error("failed to list liked articles", sl.Err(err))
		status, resp := response.FromDomainError(err, "could not list liked articles")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("liked items listed",
		slog.Int("comments", len(comments)),
		slog.Int("articles", len(articles)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"comments": comments,
		"articles": articles,
	}))
}
