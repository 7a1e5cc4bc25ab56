package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/internal/application"
	"github.com/oksasatya/go-ddd-blog/internal/interface/forms"
)

// PageHandler serves the landing, greeting and small form pages.
type PageHandler struct {
	Render *Renderer
	Users  *application.UserService
	Now    func() time.Time
}

func NewPageHandler(render *Renderer, users *application.UserService) *PageHandler {
	return &PageHandler{Render: render, Users: users, Now: time.Now}
}

func (h *PageHandler) Index(c *gin.Context) {
	h.Render.HTML(c, http.StatusOK, "index.html", gin.H{
		"FirstName":     "John",
		"Stuff":         "this is bold text",
		"FavoritePizza": []any{"Pepperoni", "Cheese", "Chicken", 41},
	})
}

func (h *PageHandler) User(c *gin.Context) {
	h.Render.HTML(c, http.StatusOK, "user.html", gin.H{"UserName": c.Param("name")})
}

// Date returns today's date as {"Date": "YYYY-MM-DD"}.
func (h *PageHandler) Date(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Date": h.Now().Format(time.DateOnly)})
}

func (h *PageHandler) NameForm(c *gin.Context) {
	h.Render.HTML(c, http.StatusOK, "name.html", gin.H{"Title": "Name", "Form": forms.NameForm{}})
}

func (h *PageHandler) SubmitName(c *gin.Context) {
	values := postForm(c)
	f, err := forms.ParseName(values)
	if err != nil {
		h.Render.HTML(c, http.StatusUnprocessableEntity, "name.html", gin.H{
			"Title":  "Name",
			"Form":   forms.NameForm{Name: values.Get("name")},
			"Errors": fieldErrors(err),
		})
		return
	}
	h.Render.Flash.Add(c, "Form submitted successfully")
	h.Render.HTML(c, http.StatusOK, "name.html", gin.H{"Title": "Name", "Name": f.Name, "Form": forms.NameForm{}})
}

func (h *PageHandler) PasswordForm(c *gin.Context) {
	h.Render.HTML(c, http.StatusOK, "test_pw.html", gin.H{"Title": "Test password", "Form": forms.PasswordLoginForm{}})
}

// SubmitPassword checks a password against the stored credential for an email.
// An unknown email renders a notice instead of failing.
func (h *PageHandler) SubmitPassword(c *gin.Context) {
	values := postForm(c)
	f, err := forms.ParsePasswordLogin(values)
	if err != nil {
		h.Render.HTML(c, http.StatusUnprocessableEntity, "test_pw.html", gin.H{
			"Title":  "Test password",
			"Form":   forms.PasswordLoginForm{Email: values.Get("email")},
			"Errors": fieldErrors(err),
		})
		return
	}

	data := gin.H{"Title": "Test password", "Email": f.Email, "Form": forms.PasswordLoginForm{}}
	u, passed, err := h.Users.CheckPassword(c.Request.Context(), f.Email, f.Password)
	switch {
	case err == nil:
		data["Found"] = true
		data["UserName"] = u.Name
		data["Passed"] = passed
	case errors.Is(err, application.ErrNotFound):
		data["Found"] = false
	default:
		h.Render.StorageFailure(c, "check password", err)
		h.Render.HTML(c, http.StatusInternalServerError, "test_pw.html", gin.H{
			"Title": "Test password",
			"Form":  forms.PasswordLoginForm{Email: f.Email},
		})
		return
	}
	h.Render.HTML(c, http.StatusOK, "test_pw.html", data)
}
