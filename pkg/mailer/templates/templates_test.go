package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	data := NewWelcomeData("blog", "Flasker", "Alice", "a@x.io",
		WithTime(time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)),
		WithSiteURL("http://blog.test"),
	)

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Flasker, Alice", subject)
	assert.Contains(t, text, "a@x.io")
	assert.Contains(t, text, "02 May 2024, 10:00")
	assert.Contains(t, text, "http://blog.test/add_post")
	assert.Contains(t, html, `href="http://blog.test/add_post"`)
}

func TestRender_EscapesHTML(t *testing.T) {
	_, _, html, err := Render(Welcome, NewWelcomeData("blog", "", "<b>Eve</b>", "e@x.io"))
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;b&gt;Eve&lt;/b&gt;")
	assert.Contains(t, html, "Flasker")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("missing", EmailData{})
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "x", defaultFn("x", ""))
	assert.Equal(t, "x", defaultFn("x", nil))
	assert.Equal(t, "x", defaultFn("x", 0))
	assert.Equal(t, "v", defaultFn("x", "v"))
	assert.Equal(t, 3, defaultFn("x", 3))
}
