package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/migrations"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/storetest"
)

// Runs against a real server only when TEST_POSTGRES_DSN is set.
func TestRepositories(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	require.NoError(t, migrations.Up(migrations.DialectPostgres, dsn, nil))

	ctx := context.Background()
	pool, err := NewPool(ctx, dsn, 4, 1, time.Hour)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	storetest.Run(t, func(t *testing.T) (repository.UserRepository, repository.PostRepository) {
		_, err := pool.Exec(ctx, `TRUNCATE users, posts RESTART IDENTITY`)
		require.NoError(t, err)
		return NewUserRepository(pool), NewPostRepository(pool)
	})
}

func TestNewPool_OutlivesStartupContext(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := NewPool(ctx, dsn, 4, 2, time.Hour)
	cancel()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.Eventually(t, func() bool {
		return pool.Stat().TotalConns() >= 2
	}, 5*time.Second, 50*time.Millisecond)
	require.NoError(t, pool.Ping(context.Background()))
}
