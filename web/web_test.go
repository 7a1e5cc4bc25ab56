package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_AllPagesRender(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	pages := []string{
		"index.html", "user.html", "name.html", "test_pw.html", "add_user.html",
		"update.html", "add_post.html", "posts.html", "post.html", "edit.html",
		"404.html", "500.html",
	}
	for _, name := range pages {
		require.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "add_user.html", map[string]any{
		"Flashes": []string{"User added successfully"},
		"Form":    struct{ Name, Email, FavoriteColor string }{"Alice", "a@x.io", "blue"},
		"Errors":  map[string]string{"password_confirm": "must match password"},
		"Users":   nil,
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "User added successfully")
	assert.Contains(t, out, `value="Alice"`)
	assert.Contains(t, out, "must match password")
	assert.Contains(t, out, "No users yet.")
}

func TestTemplates_EscapesContent(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "user.html", map[string]any{"UserName": "<script>"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "&lt;script&gt;")
	assert.NotContains(t, buf.String(), "<script>")
}

func TestDate(t *testing.T) {
	date := Funcs["date"].(func(time.Time) string)
	assert.Equal(t, "", date(time.Time{}))
	assert.Equal(t, "2024-03-01 09:30", date(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "x")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "x"}, m)

	_, err = dict("a")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}
