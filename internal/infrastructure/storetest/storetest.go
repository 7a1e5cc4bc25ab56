// Package storetest holds behavioral tests shared by every repository backend.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

// Factory returns an empty repository pair for one subtest.
type Factory func(t *testing.T) (repository.UserRepository, repository.PostRepository)

func newUser(name, email string) *entity.User {
	return &entity.User{
		Name:          name,
		Email:         email,
		FavoriteColor: "blue",
		Password:      entity.CredentialFromHash("pbkdf2:sha256:1$salt$00ff"),
	}
}

func newPost(title string) *entity.Post {
	return &entity.Post{Title: title, Content: "body of " + title, Author: "alice", Slug: "slug-" + title}
}

// Run executes the repository contract against backends built by f.
func Run(t *testing.T, f Factory) {
	t.Run("UserCreateAndLookup", func(t *testing.T) { testUserCreateAndLookup(t, f) })
	t.Run("UserDuplicateEmail", func(t *testing.T) { testUserDuplicateEmail(t, f) })
	t.Run("UserUpdate", func(t *testing.T) { testUserUpdate(t, f) })
	t.Run("UserDelete", func(t *testing.T) { testUserDelete(t, f) })
	t.Run("UserListOrder", func(t *testing.T) { testUserListOrder(t, f) })
	t.Run("PostCRUD", func(t *testing.T) { testPostCRUD(t, f) })
	t.Run("PostListOrderedByDate", func(t *testing.T) { testPostListOrderedByDate(t, f) })
	t.Run("PostSlugNotUnique", func(t *testing.T) { testPostSlugNotUnique(t, f) })
}

func testUserCreateAndLookup(t *testing.T, f Factory) {
	ctx := context.Background()
	users, _ := f(t)

	u := newUser("Alice", "a@x.com")
	require.NoError(t, users.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.False(t, u.DateAdded.IsZero())

	byEmail, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, "Alice", byEmail.Name)
	assert.Equal(t, "blue", byEmail.FavoriteColor)
	assert.Equal(t, u.Password.Hash(), byEmail.Password.Hash())

	byID, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = users.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = users.GetByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testUserDuplicateEmail(t *testing.T, f Factory) {
	ctx := context.Background()
	users, _ := f(t)

	require.NoError(t, users.Create(ctx, newUser("Alice", "a@x.com")))
	err := users.Create(ctx, newUser("Other", "a@x.com"))
	assert.ErrorIs(t, err, repository.ErrConflict)

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func testUserUpdate(t *testing.T, f Factory) {
	ctx := context.Background()
	users, _ := f(t)

	u := newUser("Alice", "a@x.com")
	require.NoError(t, users.Create(ctx, u))
	added := u.DateAdded
	hash := u.Password.Hash()

	changed := &entity.User{ID: u.ID, Name: "Alicia", Email: "alicia@x.com", FavoriteColor: "green"}
	require.NoError(t, users.Update(ctx, changed))

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.Equal(t, "alicia@x.com", got.Email)
	assert.Equal(t, "green", got.FavoriteColor)
	assert.Equal(t, hash, got.Password.Hash(), "password must survive update")
	assert.WithinDuration(t, added, got.DateAdded, time.Millisecond)

	missing := &entity.User{ID: u.ID + 100, Name: "x", Email: "y@x.com"}
	assert.ErrorIs(t, users.Update(ctx, missing), repository.ErrNotFound)

	other := newUser("Bob", "b@x.com")
	require.NoError(t, users.Create(ctx, other))
	other.Email = "alicia@x.com"
	assert.ErrorIs(t, users.Update(ctx, other), repository.ErrConflict)
}

func testUserDelete(t *testing.T, f Factory) {
	ctx := context.Background()
	users, _ := f(t)

	u := newUser("Alice", "a@x.com")
	require.NoError(t, users.Create(ctx, u))
	require.NoError(t, users.Delete(ctx, u.ID))

	_, err := users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, users.Delete(ctx, u.ID), repository.ErrNotFound)
}

func testUserListOrder(t *testing.T, f Factory) {
	ctx := context.Background()
	users, _ := f(t)

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, users.Create(ctx, newUser(name, name+"@x.com")))
	}
	list, err = users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func testPostCRUD(t *testing.T, f Factory) {
	ctx := context.Background()
	_, posts := f(t)

	p := newPost("first")
	require.NoError(t, posts.Create(ctx, p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.DatePosted.IsZero())
	posted := p.DatePosted

	got, err := posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, "slug-first", got.Slug)

	got.Title, got.Content, got.Author, got.Slug = "renamed", "new body", "bob", "new-slug"
	require.NoError(t, posts.Update(ctx, got))
	assert.WithinDuration(t, posted, got.DatePosted, time.Millisecond)

	again, err := posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", again.Title)
	assert.Equal(t, "new body", again.Content)
	assert.Equal(t, "bob", again.Author)
	assert.Equal(t, "new-slug", again.Slug)

	assert.ErrorIs(t, posts.Update(ctx, &entity.Post{ID: p.ID + 100, Title: "x"}), repository.ErrNotFound)

	require.NoError(t, posts.Delete(ctx, p.ID))
	_, err = posts.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, posts.Delete(ctx, p.ID), repository.ErrNotFound)
}

func testPostListOrderedByDate(t *testing.T, f Factory) {
	ctx := context.Background()
	_, posts := f(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	second := newPost("second")
	second.DatePosted = base.Add(time.Hour)
	first := newPost("first")
	first.DatePosted = base
	require.NoError(t, posts.Create(ctx, second))
	require.NoError(t, posts.Create(ctx, first))

	list, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "second", list[1].Title)

	backdated := newPost("backdated")
	backdated.DatePosted = base.Add(-24 * time.Hour)
	require.NoError(t, posts.Create(ctx, backdated))

	list, err = posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "backdated", list[0].Title)
}

func testPostSlugNotUnique(t *testing.T, f Factory) {
	ctx := context.Background()
	_, posts := f(t)

	a, b := newPost("a"), newPost("b")
	a.Slug, b.Slug = "same", "same"
	require.NoError(t, posts.Create(ctx, a))
	require.NoError(t, posts.Create(ctx, b))
}
