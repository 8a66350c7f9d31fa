package rabbitmq

import (
	"context"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

// maxInFlight ограничивает число писем, обрабатываемых одновременно.
const maxInFlight = 10

// ConsumerMessage запускает фонового потребителя очереди queueName.
// Каждое сообщение передаётся handler в отдельной горутине: при ошибке
// обработчика сообщение возвращается в очередь (nack с requeue), при
// успехе подтверждается. Потребитель завершается при отмене контекста
// или закрытии канала доставки.
func ConsumerMessage(ctx context.Context, ch *amqp.Channel, queueName string, handler func([]byte) error) error {
	const op = "rabbitmq.ConsumerMessage"

	deliveries, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	sem := make(chan struct{}, maxInFlight)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				sem <- struct{}{}
				go func(d amqp.Delivery) {
					defer func() { <-sem }()
					if err := handler(d.Body); err != nil {
						if nackErr := d.Nack(false, true); nackErr != nil {
							log.Printf("%s: nack failed: %v", op, nackErr)
						}
						return
					}
					if ackErr := d.Ack(false); ackErr != nil {
						log.Printf("%s: ack failed: %v", op, ackErr)
					}
				}(d)
			}
		}
	}()
	return nil
}
