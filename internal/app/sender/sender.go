// Package sender собирает и запускает сервис доставки писем: подключается
// к RabbitMQ, настраивает очереди почтовых событий и отправляет письма
// с кодами подтверждения и восстановления через SMTP.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/creatorboard/creator-review/internal/config"
	"github.com/creatorboard/creator-review/internal/lib/smtp"
	mq "github.com/creatorboard/creator-review/internal/rabbitmq"
	senderservice "github.com/creatorboard/creator-review/internal/services/sender"
)

// App сервис доставки писем и его зависимости.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New собирает сервис доставки писем из конфигурации.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := mq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := mq.SetupChannel(conn, mq.GetMailQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(logger, newTransport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает потребителей очередей почтовых событий и работает
// до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := mq.ConsumerMessage(ctx, a.ch, mq.ConfirmQueue, a.senderService.SendConfirmMail)
	if err != nil {
		a.logger.Error("failed to start confirm queue consumer", slog.Any("err", err))
		return err
	}

	err = mq.ConsumerMessage(ctx, a.ch, mq.ResetQueue, a.senderService.SendResetMail)
	if err != nil {
		a.logger.Error("failed to start reset queue consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
