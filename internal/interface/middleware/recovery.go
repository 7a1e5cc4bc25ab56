package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/pkg/response"
)

// Recovery turns a panic into the 500 page, or a JSON envelope when the client asked for JSON.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"path":       c.Request.URL.Path,
			"panic":      rec,
			"stack":      string(debug.Stack()),
		}).Error("panic recovered")
		response.Page(c, http.StatusInternalServerError, "500.html", gin.H{}, "internal server error")
		c.Abort()
	})
}
