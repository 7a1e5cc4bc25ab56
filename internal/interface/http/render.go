package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/application"
	"github.com/oksasatya/go-ddd-blog/internal/interface/forms"
	"github.com/oksasatya/go-ddd-blog/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-blog/pkg/flash"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog/pkg/response"
)

const msgRetry = "Something went wrong saving your changes. Please try again."

// Renderer renders pages with any queued flash messages attached.
type Renderer struct {
	Flash  flash.Store
	Logger *logrus.Logger
}

func NewRenderer(store flash.Store, logger *logrus.Logger) *Renderer {
	return &Renderer{Flash: store, Logger: logger}
}

func (r *Renderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = r.Flash.Pop(c)
	c.HTML(status, name, data)
}

// NotFound renders the 404 page (or a JSON envelope when preferred).
func (r *Renderer) NotFound(c *gin.Context) {
	response.Page(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not found", "Flashes": r.Flash.Pop(c)}, "page not found")
}

// ServerError renders the 500 page with the queued retry message.
func (r *Renderer) ServerError(c *gin.Context) {
	response.Page(c, http.StatusInternalServerError, "500.html", gin.H{"Title": "Error", "Flashes": r.Flash.Pop(c)}, "storage failure")
}

// StorageFailure logs err at the handler boundary and queues the generic retry message.
func (r *Renderer) StorageFailure(c *gin.Context, op string, err error) {
	helpers.LogError(r.Logger, "storage failure", err, logrus.Fields{
		"op":         op,
		"request_id": c.GetString(middleware.RequestIDKey),
		"path":       c.Request.URL.Path,
	})
	_ = c.Error(err)
	r.Flash.Add(c, msgRetry)
}

// failureStatus maps a service error to the status of the re-rendered page.
func failureStatus(err error) int {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func postForm(c *gin.Context) url.Values {
	if err := c.Request.ParseForm(); err != nil {
		return url.Values{}
	}
	return c.Request.PostForm
}

// fieldErrors extracts per-field messages from a validation failure.
func fieldErrors(err error) map[string]string {
	var vf *forms.ValidationFailure
	if errors.As(err, &vf) {
		return vf.Fields
	}
	return map[string]string{"form": err.Error()}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
