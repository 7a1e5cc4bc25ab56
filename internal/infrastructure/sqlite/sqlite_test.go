package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/migrations"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/storetest"
)

func openTestDB(t *testing.T) (repository.UserRepository, repository.PostRepository) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, migrations.Up(migrations.DialectSQLite, DSN(path), nil))

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db), NewPostRepository(db)
}

func TestRepositories(t *testing.T) {
	storetest.Run(t, openTestDB)
}
