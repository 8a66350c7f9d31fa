package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/creatorboard/creator-review/internal/models"
	mq "github.com/creatorboard/creator-review/internal/rabbitmq"
)

func setupBroker(t *testing.T) (string, func()) {
	ctx := context.Background()

	if testRabbitMQURL := os.Getenv("TEST_RABBITMQ_URL"); testRabbitMQURL != "" {
		t.Logf("Using external RabbitMQ service: %s", testRabbitMQURL)
		return testRabbitMQURL, func() {}
	}

	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3-management",
		ExposedPorts: []string{"5672/tcp"},
		Env: map[string]string{
			"RABBITMQ_DEFAULT_USER":   "guest",
			"RABBITMQ_DEFAULT_PASS":   "guest",
			"RABBITMQ_DEFAULT_VHOST":  "/",
			"RABBITMQ_LOOPBACK_USERS": "",
		},
		WaitingFor: wait.ForListeningPort("5672/tcp").
			WithStartupTimeout(2 * time.Minute),
	}

	rmqContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := rmqContainer.Host(ctx)
	require.NoError(t, err)
	port, err := rmqContainer.MappedPort(ctx, nat.Port("5672/tcp"))
	require.NoError(t, err)

	cleanup := func() {
		if err := rmqContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	}

	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port()), cleanup
}

func TestMailQueue_PublishConfirm(t *testing.T) {
	amqpURI, cleanup := setupBroker(t)
	defer cleanup()

	conn, err := mq.Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := mq.SetupChannel(conn, mq.GetMailQueues())
	require.NoError(t, err)
	defer ch.Close()

	queue := NewMailQueue(ch)

	msg := models.ConfirmMail{
		Email:    "new@example.com",
		Username: "newuser",
		Code:     "some-code",
	}
	require.NoError(t, queue.PublishConfirm(msg))

	deliveries, err := ch.Consume(mq.ConfirmQueue, "test-consumer", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		var got models.ConfirmMail
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, msg, got)
		assert.Equal(t, "application/json", d.ContentType)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for confirm message")
	}
}

func TestMailQueue_PublishReset(t *testing.T) {
	amqpURI, cleanup := setupBroker(t)
	defer cleanup()

	conn, err := mq.Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := mq.SetupChannel(conn, mq.GetMailQueues())
	require.NoError(t, err)
	defer ch.Close()

	queue := NewMailQueue(ch)

	msg := models.ResetMail{
		Email:    "someone@example.com",
		Username: "someone",
		Code:     "reset-code",
	}
	require.NoError(t, queue.PublishReset(msg))

	deliveries, err := ch.Consume(mq.ResetQueue, "test-consumer", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		var got models.ResetMail
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, msg, got)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for reset message")
	}
}

func TestPublishMessage_MarshalError(t *testing.T) {
	amqpURI, cleanup := setupBroker(t)
	defer cleanup()

	conn, err := mq.Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	// канал нельзя сериализовать в JSON
	badMsg := struct {
		Ch chan int `json:"ch"`
	}{
		Ch: make(chan int),
	}

	err = PublishMessage(ch, "", "whatever", badMsg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rabbitmq.PublishMessage")
}
