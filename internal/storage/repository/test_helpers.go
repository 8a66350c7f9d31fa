package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/creatorboard/creator-review/internal/migrations"
)

// setupTestDatabase поднимает контейнер PostgreSQL, применяет миграции
// и возвращает готовое хранилище вместе с функцией очистки.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for range 10 {
		storage, err = New(dsn)
		if err == nil {
			err = storage.DB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath), "failed to apply migrations")

	cleanup := func() {
		storage.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его ID
func (f *TestDataFactory) CreateUser(t *testing.T, username string) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO users (email, username, password_hash, role)
		VALUES ($1, $2, 'hashedpassword', 'user') RETURNING id`,
		username+"@example.com", username).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateYoutuber создает тестового ютубера и возвращает его ID
func (f *TestDataFactory) CreateYoutuber(t *testing.T, name, slug string) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO youtubers (name, slug, description)
		VALUES ($1, $2, 'test channel') RETURNING id`,
		name, slug).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateArticle создает тестовую статью и возвращает её ID
func (f *TestDataFactory) CreateArticle(t *testing.T, title, slug string, authorID int) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO articles (title, slug, body, author_id)
		VALUES ($1, $2, 'test body', $3) RETURNING id`,
		title, slug, authorID).Scan(&id)
	require.NoError(t, err)
	return id
}

// BackdateRating сдвигает created_at оценки в прошлое на days дней
func (f *TestDataFactory) BackdateRating(t *testing.T, ratingID, days int) {
	_, err := f.storage.DB.Exec(
		fmt.Sprintf(`UPDATE ratings SET created_at = now() - interval '%d days' WHERE id = $1`, days),
		ratingID)
	require.NoError(t, err)
}

// BackdateComment сдвигает created_at комментария в прошлое на days дней
func (f *TestDataFactory) BackdateComment(t *testing.T, commentID, days int) {
	_, err := f.storage.DB.Exec(
		fmt.Sprintf(`UPDATE comments SET created_at = now() - interval '%d days' WHERE id = $1`, days),
		commentID)
	require.NoError(t, err)
}

// CountCurrentRatings возвращает число актуальных оценок пары (пользователь, ютубер)
func (f *TestDataFactory) CountCurrentRatings(t *testing.T, userID, youtuberID int) int {
	var count int
	err := f.storage.DB.QueryRow(
		`SELECT COUNT(*) FROM ratings WHERE user_id = $1 AND youtuber_id = $2 AND current`,
		userID, youtuberID).Scan(&count)
	require.NoError(t, err)
	return count
}
