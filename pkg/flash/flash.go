// Package flash queues one-shot user messages that survive a redirect.
package flash

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// TTL bounds how long an undisplayed message is kept.
	TTL = 10 * time.Minute

	pendingKey = "flash_pending"
)

// Store queues messages for the next rendered page.
type Store interface {
	Add(c *gin.Context, msg string)
	// Pop returns and forgets every queued message.
	Pop(c *gin.Context) []string
}
