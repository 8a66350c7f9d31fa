package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/creatorboard/creator-review/internal/models"
	mq "github.com/creatorboard/creator-review/internal/rabbitmq"
)

// MailQueue публикует почтовые события в обменник mail.
type MailQueue struct {
	ch *amqp.Channel
}

// NewMailQueue создает новый экземпляр MailQueue.
func NewMailQueue(ch *amqp.Channel) *MailQueue {
	return &MailQueue{ch: ch}
}

// PublishConfirm публикует событие письма с кодом подтверждения регистрации.
func (q *MailQueue) PublishConfirm(message models.ConfirmMail) error {
	return PublishMessage(q.ch, mq.MailExchange, mq.ConfirmRoutingKey, message)
}

// PublishReset публикует событие письма с кодом восстановления пароля.
func (q *MailQueue) PublishReset(message models.ResetMail) error {
	return PublishMessage(q.ch, mq.MailExchange, mq.ResetRoutingKey, message)
}
