package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/cache"
	"osintranet-http-service/internal/infrastructure/database"
	"osintranet-http-service/internal/infrastructure/repositories"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

type published struct {
	topic   string
	payload interface{}
}

// recordingPublisher keeps every published message.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []published
	fail     bool
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.messages = append(p.messages, published{topic: topic, payload: payload})
	return nil
}

func (p *recordingPublisher) Close() {}

func (p *recordingPublisher) on(topic string) []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	var payloads []interface{}
	for _, m := range p.messages {
		if m.topic == topic {
			payloads = append(payloads, m.payload)
		}
	}
	return payloads
}

func newTestPool(t *testing.T, name string) *database.ConnectionPool {
	t.Helper()
	pool, err := database.Open(name, sqlite.Open("file::memory:"), "warn")
	require.NoError(t, err)
	pool.MaxOpenConns = 1
	require.NoError(t, pool.ConfigurePool())
	t.Cleanup(func() { pool.Close() })
	return pool
}

// newTestRepository returns a migrated and seeded intranet database.
func newTestRepository(t *testing.T) repositories.Repository {
	t.Helper()
	pool := newTestPool(t, "test")
	require.NoError(t, database.Migrate(pool.DB, database.MigrationAuto))
	require.NoError(t, database.SeedReferenceData(pool.DB))

	store := cache.NewMemoryStore(0)
	t.Cleanup(func() { store.Close() })
	return repositories.NewRepository(pool.DB, store, time.Minute)
}

func newTestCalendarDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := newTestPool(t, "calendar").SQL()
	require.NoError(t, err)
	require.NoError(t, database.EnsureCalendarSchema(context.Background(), db))
	return db
}

func userContext(mailAddress string) context.Context {
	return contracts.WithPrincipal(context.Background(), contracts.Principal{
		UserID:      7,
		Username:    "user",
		Role:        models.RoleUser,
		MailAddress: mailAddress,
	})
}

func adminContext() context.Context {
	return contracts.WithPrincipal(context.Background(), contracts.Principal{
		UserID:   1,
		Username: "admin",
		Role:     models.RoleAdmin,
	})
}

func requireCode(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	e, ok := intranet.As(err)
	require.True(t, ok, "unexpected error: %v", err)
	assert.Equal(t, want, e.Code, "error: %v", err)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(i int) *int {
	return &i
}
