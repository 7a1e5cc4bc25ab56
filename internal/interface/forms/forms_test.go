package forms

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failure(t *testing.T, err error) *ValidationFailure {
	t.Helper()
	var vf *ValidationFailure
	require.True(t, errors.As(err, &vf), "expected ValidationFailure, got %v", err)
	return vf
}

func TestParseName(t *testing.T) {
	f, err := ParseName(url.Values{"name": {"  Ada  "}})
	require.NoError(t, err)
	assert.Equal(t, "Ada", f.Name)

	for _, v := range []url.Values{{}, {"name": {""}}, {"name": {"   "}}} {
		_, err := ParseName(v)
		assert.True(t, failure(t, err).Has("name"))
	}
}

func TestParsePasswordLogin(t *testing.T) {
	f, err := ParsePasswordLogin(url.Values{"email": {"a@x.com"}, "password": {" pw "}})
	require.NoError(t, err)
	assert.Equal(t, " pw ", f.Password, "password is not trimmed")

	_, err = ParsePasswordLogin(url.Values{"email": {"a@x.com"}})
	vf := failure(t, err)
	assert.True(t, vf.Has("password"))
	assert.False(t, vf.Has("email"))
}

func TestParseUser(t *testing.T) {
	valid := url.Values{
		"name":             {"Alice"},
		"email":            {"a@x.com"},
		"favorite_color":   {""},
		"password":         {"secret1"},
		"password_confirm": {"secret1"},
	}
	f, err := ParseUser(valid)
	require.NoError(t, err)
	assert.Equal(t, "Alice", f.Name)
	assert.Equal(t, "", f.FavoriteColor)

	mismatch := url.Values{
		"name":             {"Alice"},
		"email":            {"a@x.com"},
		"password":         {"secret1"},
		"password_confirm": {"secret2"},
	}
	_, err = ParseUser(mismatch)
	vf := failure(t, err)
	assert.Equal(t, map[string]string{"password_confirm": "must match password"}, vf.Fields)

	_, err = ParseUser(url.Values{})
	vf = failure(t, err)
	for _, field := range []string{"name", "email", "password", "password_confirm"} {
		assert.True(t, vf.Has(field), field)
	}
	assert.False(t, vf.Has("favorite_color"))
	assert.Contains(t, vf.Error(), "validation failed: email:")
}

func TestParseUser_KeepsFavoriteColorAsSubmitted(t *testing.T) {
	f, err := ParseUser(url.Values{
		"name":             {" Alice "},
		"email":            {" a@x.com "},
		"favorite_color":   {" sky blue "},
		"password":         {"pw"},
		"password_confirm": {"pw"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", f.Name)
	assert.Equal(t, "a@x.com", f.Email)
	assert.Equal(t, " sky blue ", f.FavoriteColor)

	u, err := ParseUserUpdate(url.Values{"name": {"A"}, "email": {"a@x.com"}, "favorite_color": {" red"}})
	require.NoError(t, err)
	assert.Equal(t, " red", u.FavoriteColor)
}

func TestParseUserUpdate(t *testing.T) {
	_, err := ParseUserUpdate(url.Values{"name": {"A"}, "email": {" "}})
	vf := failure(t, err)
	assert.Equal(t, []string{"email"}, keys(vf.Fields))
}

func TestParsePost(t *testing.T) {
	f, err := ParsePost(url.Values{"title": {"T"}, "content": {"  body  "}, "author": {"me"}, "slug": {" t "}})
	require.NoError(t, err)
	assert.Equal(t, "  body  ", f.Content)
	assert.Equal(t, "t", f.Slug)

	_, err = ParsePost(url.Values{"title": {"T"}})
	vf := failure(t, err)
	assert.ElementsMatch(t, []string{"content", "author", "slug"}, keys(vf.Fields))
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
