package like

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/creatorboard/creator-review/internal/http/middlewarectx"
	"github.com/creatorboard/creator-review/internal/models"
)

// MockService реализует интерфейс like.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Like(ctx context.Context, userID, commentID int, intent string) (*models.LikeCounts, error) {
	args := m.Called(ctx, userID, commentID, intent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LikeCounts), args.Error(1)
}

func TestLikeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		body           string
		userID         int
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешный лайк",
			id:     "55",
			body:   `{"intent":"positive"}`,
			userID: 7,
			setupMock: func(m *MockService) {
				m.On("Like", mock.Anything, 7, 55, "positive").
					Return(&models.LikeCounts{Positive: 3, Negative: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"positive":3`,
		},
		{
			name:           "некорректный id",
			id:             "abc",
			body:           `{"intent":"positive"}`,
			userID:         7,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `failed to decode id from url`,
		},
		{
			name:           "неизвестное намерение",
			id:             "55",
			body:           `{"intent":"super-like"}`,
			userID:         7,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Intent has an unsupported value`,
		},
		{
			name:           "без авторизации",
			id:             "55",
			body:           `{"intent":"positive"}`,
			userID:         0,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
		},
		{
			name:   "повторный лайк",
			id:     "55",
			body:   `{"intent":"positive"}`,
			userID: 7,
			setupMock: func(m *MockService) {
				m.On("Like", mock.Anything, 7, 55, "positive").
					Return(nil, models.ErrLikeExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `like already exists`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/comments/"+tt.id+"/likes", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.userID != 0 {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.userID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
