package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorboard/creator-review/internal/lib/jwt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewJWTMaker("test_secret_key", time.Hour)

	token, err := maker.GenerateToken(7, "someone", "user")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "валидный токен",
			authHeader:     "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "нет заголовка",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name:           "не Bearer",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name:           "мусор вместо токена",
			authHeader:     "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, 7, r.Context().Value(UserID))
				assert.Equal(t, "someone", r.Context().Value(User))
				assert.Equal(t, "user", r.Context().Value(Role))
			})

			handler := JWTMiddleware(maker, newTestLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if !tt.expectNext {
				assert.True(t, strings.Contains(w.Body.String(), "Error"),
					"error response expected, got %s", w.Body.String())
			}
		})
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	expiredMaker := jwt.NewJWTMaker("test_secret_key", -time.Hour)
	token, err := expiredMaker.GenerateToken(7, "someone", "user")
	require.NoError(t, err)

	maker := jwt.NewJWTMaker("test_secret_key", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})
	handler := JWTMiddleware(maker, newTestLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_ConcurrentRequests(t *testing.T) {
	maker := jwt.NewJWTMaker("test_secret_key", time.Hour)
	token, err := maker.GenerateToken(7, "someone", "user")
	require.NoError(t, err)

	// один экземпляр middleware обслуживает запросы параллельно,
	// логгер не должен разделяться между горутинами
	handler := JWTMiddleware(maker, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()
}

func TestAdminOnlyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		role           any
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "админ проходит",
			role:           "admin",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "обычный пользователь получает 403",
			role:           "user",
			expectedStatus: http.StatusForbidden,
			expectNext:     false,
		},
		{
			name:           "роль отсутствует",
			role:           nil,
			expectedStatus: http.StatusForbidden,
			expectNext:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			handler := AdminOnlyMiddleware(newTestLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.role != nil {
				req = req.WithContext(context.WithValue(req.Context(), Role, tt.role))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
