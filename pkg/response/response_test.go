package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"text/html,application/xhtml+xml", false},
		{"application/json", true},
		{"*/*", false},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.accept != "" {
			c.Request.Header.Set("Accept", tc.accept)
		}
		assert.Equal(t, tc.want, WantsJSON(c), tc.accept)
	}
}

func TestPage_JSONEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/missing", nil)
	c.Request.Header.Set("Accept", "application/json")
	c.Set("request_id", "rid-1")

	Page(c, http.StatusNotFound, "404.html", nil, "not found")

	require.Equal(t, http.StatusNotFound, w.Code)
	var body APIResponse[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "rid-1", body.RequestID)
	assert.Equal(t, "not found", body.Message)
	assert.Equal(t, "Not Found", body.Error)
}
