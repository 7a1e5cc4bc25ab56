package flash

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

const cookieName = "flash"

// CookieStore keeps messages in a base64 JSON cookie. Used when redis is not configured.
type CookieStore struct {
	Cookies *helpers.Manager
}

func NewCookieStore(cookies *helpers.Manager) *CookieStore {
	return &CookieStore{Cookies: cookies}
}

func (s *CookieStore) messages(c *gin.Context) []string {
	if v, ok := c.Get(pendingKey); ok {
		return v.([]string)
	}
	var msgs []string
	if raw, err := c.Cookie(cookieName); err == nil && raw != "" {
		if b, err := base64.RawURLEncoding.DecodeString(raw); err == nil {
			_ = json.Unmarshal(b, &msgs)
		}
	}
	c.Set(pendingKey, msgs)
	return msgs
}

func (s *CookieStore) Add(c *gin.Context, msg string) {
	msgs := append(s.messages(c), msg)
	c.Set(pendingKey, msgs)
	b, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	s.Cookies.Set(c, cookieName, base64.RawURLEncoding.EncodeToString(b), time.Now().Add(TTL))
}

func (s *CookieStore) Pop(c *gin.Context) []string {
	msgs := s.messages(c)
	if len(msgs) == 0 {
		return nil
	}
	c.Set(pendingKey, []string(nil))
	s.Cookies.Clear(c, cookieName)
	return msgs
}
