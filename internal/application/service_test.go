package application_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/internal/application"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/migrations"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/sqlite"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []application.Event
	err    error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, body.(application.Event))
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	users *application.UserService
	posts *application.PostService
	pub   *recordingPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.db")
	require.NoError(t, migrations.Up(migrations.DialectSQLite, sqlite.DSN(path), nil))
	db, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	hasher, err := helpers.NewPasswordHasher(helpers.HashMethodPBKDF2, 1000, 0)
	require.NoError(t, err)
	pub := &recordingPublisher{}
	return fixture{
		users: application.NewUserService(sqlite.NewUserRepository(db), hasher, pub, nil),
		posts: application.NewPostService(sqlite.NewPostRepository(db), pub, nil),
		pub:   pub,
	}
}

func TestUserService_CreateThenDuplicate(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	u, err := fx.users.Create(ctx, application.CreateUserInput{Name: "Alice", Email: "a@x.com", FavoriteColor: "blue", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.Password.Hash())

	list, err := fx.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Name)

	_, err = fx.users.Create(ctx, application.CreateUserInput{Name: "Alice 2", Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, application.ErrConflict)

	list, err = fx.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, []string{application.EventUserCreated}, fx.pub.types())
}

func TestUserService_StoredPasswordIsHashed(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	_, err := fx.users.Create(ctx, application.CreateUserInput{Name: "Bob", Email: "b@x.com", Password: "hunter2"})
	require.NoError(t, err)

	stored, err := fx.users.FindByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.Password.Hash())
	assert.Contains(t, stored.Password.Hash(), "pbkdf2:sha256:1000$")

	ok, err := fx.users.VerifyCredentials(ctx, "b@x.com", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.users.VerifyCredentials(ctx, "b@x.com", "hunter2x")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = fx.users.VerifyCredentials(ctx, "nobody@x.com", "hunter2")
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	u, err := fx.users.Create(ctx, application.CreateUserInput{Name: "Carol", Email: "c@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = fx.users.Update(ctx, u.ID+42, application.UpdateUserInput{Name: "Ghost", Email: "g@x.com"})
	assert.ErrorIs(t, err, application.ErrNotFound)
	unchanged, err := fx.users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carol", unchanged.Name)

	updated, err := fx.users.Update(ctx, u.ID, application.UpdateUserInput{Name: "Caroline", Email: "caroline@x.com", FavoriteColor: "red"})
	require.NoError(t, err)
	assert.Equal(t, "Caroline", updated.Name)
	assert.True(t, updated.Password.Verify(fx.users.Hasher, "pw"), "update must not touch the password")

	require.NoError(t, fx.users.Delete(ctx, u.ID))
	assert.ErrorIs(t, fx.users.Delete(ctx, u.ID), application.ErrNotFound)
	assert.Equal(t, []string{application.EventUserCreated, application.EventUserUpdated, application.EventUserDeleted}, fx.pub.types())
}

func TestUserService_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	fx.pub.err = errors.New("broker down")

	_, err := fx.users.Create(ctx, application.CreateUserInput{Name: "Dan", Email: "d@x.com", Password: "pw"})
	assert.NoError(t, err)
}

func TestPostService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	p, err := fx.posts.Create(ctx, application.PostInput{Title: "Hello", Content: "World", Author: "alice", Slug: "hello"})
	require.NoError(t, err)

	got, err := fx.posts.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)

	edited, err := fx.posts.Update(ctx, p.ID, application.PostInput{Title: "Hi", Content: "There", Author: "bob", Slug: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Hi", edited.Title)

	require.NoError(t, fx.posts.Delete(ctx, p.ID))
	_, err = fx.posts.Get(ctx, p.ID)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

type brokenUsers struct {
	repository.UserRepository
}

func (brokenUsers) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, errors.New("disk I/O error")
}

func TestUserService_StorageFailureIsWrapped(t *testing.T) {
	hasher, err := helpers.NewPasswordHasher(helpers.HashMethodPBKDF2, 1000, 0)
	require.NoError(t, err)
	svc := application.NewUserService(brokenUsers{}, hasher, nil, nil)

	_, err = svc.Create(context.Background(), application.CreateUserInput{Name: "E", Email: "e@x.com", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrStorage)
	assert.NotErrorIs(t, err, application.ErrConflict)

	var se *application.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "find user by email", se.Op)
}
