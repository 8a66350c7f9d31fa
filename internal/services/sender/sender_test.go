package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/creatorboard/creator-review/internal/lib/smtp"
	"github.com/creatorboard/creator-review/internal/models"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *MockTransport) GetSMTPUser() string {
	args := m.Called()
	return args.String(0)
}

type MockSMTPClient struct {
	mock.Mock
	written bytes.Buffer
}

func (m *MockSMTPClient) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *MockSMTPClient) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

func (m *MockSMTPClient) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *MockSMTPClient) Quit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSMTPClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

type writeCloserBuffer struct {
	*bytes.Buffer
}

func (w *writeCloserBuffer) Close() error { return nil }

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendConfirmMail_Success(t *testing.T) {
	transport := new(MockTransport)
	client := new(MockSMTPClient)
	buf := &writeCloserBuffer{Buffer: &bytes.Buffer{}}

	transport.On("Connect").Return(client, nil)
	transport.On("GetSMTPUser").Return("noreply@example.com")
	client.On("Mail", "noreply@example.com").Return(nil)
	client.On("Rcpt", "user@example.com").Return(nil)
	client.On("Data").Return(buf, nil)
	client.On("Quit").Return(nil)
	client.On("Close").Return(nil)

	svc := NewSenderService(newNoopLogger(), transport)

	body, err := json.Marshal(models.ConfirmMail{
		Email:    "user@example.com",
		Username: "newuser",
		Code:     "b5f1c1f0-0000-0000-0000-000000000000",
	})
	require.NoError(t, err)

	err = svc.SendConfirmMail(body)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "newuser")
	assert.Contains(t, buf.String(), "b5f1c1f0-0000-0000-0000-000000000000")
	transport.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestSendResetMail_Success(t *testing.T) {
	transport := new(MockTransport)
	client := new(MockSMTPClient)
	buf := &writeCloserBuffer{Buffer: &bytes.Buffer{}}

	transport.On("Connect").Return(client, nil)
	transport.On("GetSMTPUser").Return("noreply@example.com")
	client.On("Mail", "noreply@example.com").Return(nil)
	client.On("Rcpt", "user@example.com").Return(nil)
	client.On("Data").Return(buf, nil)
	client.On("Quit").Return(nil)
	client.On("Close").Return(nil)

	svc := NewSenderService(newNoopLogger(), transport)

	body, err := json.Marshal(models.ResetMail{
		Email:    "user@example.com",
		Username: "olduser",
		Code:     "0d9ff34e-0000-0000-0000-000000000000",
	})
	require.NoError(t, err)

	err = svc.SendResetMail(body)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "olduser")
	assert.Contains(t, buf.String(), "0d9ff34e-0000-0000-0000-000000000000")
}

func TestSendConfirmMail_InvalidJSON(t *testing.T) {
	transport := new(MockTransport)
	svc := NewSenderService(newNoopLogger(), transport)

	err := svc.SendConfirmMail([]byte("{not json"))
	assert.Error(t, err)
	transport.AssertNotCalled(t, "Connect")
}

func TestSendConfirmMail_ConnectError(t *testing.T) {
	transport := new(MockTransport)
	transport.On("GetSMTPUser").Return("noreply@example.com")
	transport.On("Connect").Return(nil, errors.New("dial error"))

	svc := NewSenderService(newNoopLogger(), transport)

	body, err := json.Marshal(models.ConfirmMail{
		Email:    "user@example.com",
		Username: "newuser",
		Code:     "b5f1c1f0-0000-0000-0000-000000000000",
	})
	require.NoError(t, err)

	err = svc.SendConfirmMail(body)
	assert.Error(t, err)
}
