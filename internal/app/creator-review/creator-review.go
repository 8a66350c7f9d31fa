// Package creatorreview собирает и запускает основное HTTP-приложение:
// подключение к PostgreSQL, применение миграций, Redis-кеш, очередь
// почтовых событий и все сервисы с маршрутами.
package creatorreview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/creatorboard/creator-review/internal/cache"
	"github.com/creatorboard/creator-review/internal/config"
	"github.com/creatorboard/creator-review/internal/lib/jwt"
	libmq "github.com/creatorboard/creator-review/internal/lib/rabbitmq"
	"github.com/creatorboard/creator-review/internal/migrations"
	mq "github.com/creatorboard/creator-review/internal/rabbitmq"
	adminservice "github.com/creatorboard/creator-review/internal/services/admin"
	articleservice "github.com/creatorboard/creator-review/internal/services/article"
	authservice "github.com/creatorboard/creator-review/internal/services/auth"
	commentservice "github.com/creatorboard/creator-review/internal/services/comment"
	ratingservice "github.com/creatorboard/creator-review/internal/services/rating"
	youtuberservice "github.com/creatorboard/creator-review/internal/services/youtuber"
	"github.com/creatorboard/creator-review/internal/storage/repository"
)

// App основное приложение: HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New собирает приложение из конфигурации: хранилище, кеш, очередь,
// сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := mq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := mq.SetupChannel(conn, mq.GetMailQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}
	mailQueue := libmq.NewMailQueue(ch)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, mailQueue, jwtMaker, logger)
	ratingService := ratingservice.NewRatingService(db, cacheRedis, logger)
	commentService := commentservice.NewCommentService(db, db, logger)
	articleService := articleservice.NewArticleService(db, db, logger)
	youtuberService := youtuberservice.NewYoutuberService(db, cacheRedis, logger)
	adminService := adminservice.NewAdminService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, &Services{
		Auth:     authService,
		Rating:   ratingService,
		Comment:  commentService,
		Article:  articleService,
		Youtuber: youtuberService,
		Admin:    adminService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.ch.Close(); cerr != nil {
			a.logger.Error("failed to close channel", slog.Any("err", cerr))
		}
		if cerr := a.conn.Close(); cerr != nil {
			a.logger.Error("failed to close connection", slog.Any("err", cerr))
		}
		a.db.DB.Close()
		return err
	}
}
