// Package creatorreview предоставляет маршруты для основного приложения.
package creatorreview

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/creatorboard/creator-review/internal/http/handlers/admin/articlecreate"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/articleremove"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/articleupdate"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/boardconfig"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/boardconfigupdate"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/categorycreate"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/categoryremove"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/categoryupdate"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/notices"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/stats"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/youtubercreate"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/youtuberremove"
	"github.com/creatorboard/creator-review/internal/http/handlers/admin/youtuberupdate"
	articlecomments "github.com/creatorboard/creator-review/internal/http/handlers/article/commentcreate"
	articlecommentlist "github.com/creatorboard/creator-review/internal/http/handlers/article/comments"
	articlelike "github.com/creatorboard/creator-review/internal/http/handlers/article/like"
	articlelist "github.com/creatorboard/creator-review/internal/http/handlers/article/list"
	articleread "github.com/creatorboard/creator-review/internal/http/handlers/article/read"
	"github.com/creatorboard/creator-review/internal/http/handlers/auth/confirm"
	"github.com/creatorboard/creator-review/internal/http/handlers/auth/login"
	"github.com/creatorboard/creator-review/internal/http/handlers/auth/register"
	"github.com/creatorboard/creator-review/internal/http/handlers/auth/resetconfirm"
	"github.com/creatorboard/creator-review/internal/http/handlers/auth/resetrequest"
	boardshow "github.com/creatorboard/creator-review/internal/http/handlers/board/show"
	categorylist "github.com/creatorboard/creator-review/internal/http/handlers/category/list"
	categoryyoutubers "github.com/creatorboard/creator-review/internal/http/handlers/category/youtubers"
	commentlike "github.com/creatorboard/creator-review/internal/http/handlers/comment/like"
	profilelikes "github.com/creatorboard/creator-review/internal/http/handlers/profile/likes"
	profileshow "github.com/creatorboard/creator-review/internal/http/handlers/profile/show"
	"github.com/creatorboard/creator-review/internal/http/handlers/youtuber/commentcreate"
	"github.com/creatorboard/creator-review/internal/http/handlers/youtuber/comments"
	"github.com/creatorboard/creator-review/internal/http/handlers/youtuber/rate"
	"github.com/creatorboard/creator-review/internal/http/handlers/youtuber/read"
	"github.com/creatorboard/creator-review/internal/http/middlewarectx"
	"github.com/creatorboard/creator-review/internal/lib/jwt"
	adminservice "github.com/creatorboard/creator-review/internal/services/admin"
	articleservice "github.com/creatorboard/creator-review/internal/services/article"
	authservice "github.com/creatorboard/creator-review/internal/services/auth"
	commentservice "github.com/creatorboard/creator-review/internal/services/comment"
	ratingservice "github.com/creatorboard/creator-review/internal/services/rating"
	youtuberservice "github.com/creatorboard/creator-review/internal/services/youtuber"
)

// Services сервисы, которые нужны маршрутам приложения.
type Services struct {
	Auth     *authservice.AuthService
	Rating   *ratingservice.RatingService
	Comment  *commentservice.CommentService
	Article  *articleservice.ArticleService
	Youtuber *youtuberservice.YoutuberService
	Admin    *adminservice.AdminService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/confirm", confirm.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/reset/request", resetrequest.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/reset/confirm", resetconfirm.New(logger, s.Auth).ServeHTTP)

		r.Get("/board", boardshow.New(logger, s.Youtuber).ServeHTTP)
		r.Get("/youtubers/{slug}", read.New(logger, s.Youtuber).ServeHTTP)
		r.Get("/youtubers/{slug}/comments", comments.New(logger, s.Comment).ServeHTTP)
		r.Get("/categories", categorylist.New(logger, s.Youtuber).ServeHTTP)
		r.Get("/categories/{slug}/youtubers", categoryyoutubers.New(logger, s.Youtuber).ServeHTTP)
		r.Get("/articles", articlelist.New(logger, s.Article).ServeHTTP)
		r.Get("/articles/{slug}", articleread.New(logger, s.Article).ServeHTTP)
		r.Get("/articles/{slug}/comments", articlecommentlist.New(logger, s.Article).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/youtubers/{slug}/ratings", rate.New(logger, s.Rating).ServeHTTP)
			r.Post("/youtubers/{slug}/comments", commentcreate.New(logger, s.Comment).ServeHTTP)
			r.Post("/comments/{id}/likes", commentlike.New(logger, s.Comment).ServeHTTP)
			r.Post("/articles/{slug}/likes", articlelike.New(logger, s.Article).ServeHTTP)
			r.Post("/articles/{slug}/comments", articlecomments.New(logger, s.Article).ServeHTTP)
			r.Get("/profile", profileshow.New(logger, s.Rating, s.Comment).ServeHTTP)
			r.Get("/profile/likes", profilelikes.New(logger, s.Comment, s.Article).ServeHTTP)

			// Группа администратора
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Post("/admin/youtubers", youtubercreate.New(logger, s.Admin).ServeHTTP)
				r.Put("/admin/youtubers/{id}", youtuberupdate.New(logger, s.Admin).ServeHTTP)
				r.Delete("/admin/youtubers/{id}", youtuberremove.New(logger, s.Admin).ServeHTTP)
				r.Post("/admin/categories", categorycreate.New(logger, s.Admin).ServeHTTP)
				r.Put("/admin/categories/{id}", categoryupdate.New(logger, s.Admin).ServeHTTP)
				r.Delete("/admin/categories/{id}", categoryremove.New(logger, s.Admin).ServeHTTP)
				r.Post("/admin/articles", articlecreate.New(logger, s.Admin).ServeHTTP)
				r.Put("/admin/articles/{id}", articleupdate.New(logger, s.Admin).ServeHTTP)
				r.Delete("/admin/articles/{id}", articleremove.New(logger, s.Admin).ServeHTTP)
				r.Get("/admin/notices", notices.New(logger, s.Admin).ServeHTTP)
				r.Get("/admin/stats", stats.New(logger, s.Admin).ServeHTTP)
				r.Get("/admin/board", boardconfig.New(logger, s.Admin).ServeHTTP)
				r.Put("/admin/board", boardconfigupdate.New(logger, s.Admin).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
