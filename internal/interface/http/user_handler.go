package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/internal/application"
	"github.com/oksasatya/go-ddd-blog/internal/interface/forms"
)

type UserHandler struct {
	Render *Renderer
	Svc    *application.UserService
}

func NewUserHandler(render *Renderer, svc *application.UserService) *UserHandler {
	return &UserHandler{Render: render, Svc: svc}
}

// renderList renders the add-user page with the current users listed below the form.
func (h *UserHandler) renderList(c *gin.Context, status int, form forms.UserForm, errs map[string]string) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Render.StorageFailure(c, "list users", err)
		status = http.StatusInternalServerError
	}
	form.Password, form.PasswordConfirm = "", ""
	h.Render.HTML(c, status, "add_user.html", gin.H{
		"Title":  "Add user",
		"Form":   form,
		"Errors": errs,
		"Users":  users,
	})
}

func (h *UserHandler) AddPage(c *gin.Context) {
	h.renderList(c, http.StatusOK, forms.UserForm{}, nil)
}

func (h *UserHandler) Add(c *gin.Context) {
	values := postForm(c)
	f, err := forms.ParseUser(values)
	if err != nil {
		h.renderList(c, http.StatusUnprocessableEntity, forms.UserForm{
			Name:          values.Get("name"),
			Email:         values.Get("email"),
			FavoriteColor: values.Get("favorite_color"),
		}, fieldErrors(err))
		return
	}

	_, err = h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Name:          f.Name,
		Email:         f.Email,
		FavoriteColor: f.FavoriteColor,
		Password:      f.Password,
	})
	switch {
	case err == nil:
		h.Render.Flash.Add(c, "User added successfully")
		h.renderList(c, http.StatusOK, forms.UserForm{}, nil)
	case errors.Is(err, application.ErrConflict):
		h.Render.Flash.Add(c, "User already exists")
		h.renderList(c, http.StatusConflict, forms.UserForm{}, nil)
	default:
		h.Render.StorageFailure(c, "create user", err)
		h.renderList(c, http.StatusInternalServerError, f, nil)
	}
}

func (h *UserHandler) renderEdit(c *gin.Context, status int, id int64, form forms.UserUpdateForm, errs map[string]string) {
	h.Render.HTML(c, status, "update.html", gin.H{
		"Title":  "Update user",
		"ID":     id,
		"Form":   form,
		"Errors": errs,
	})
}

func (h *UserHandler) EditPage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.Render.NotFound(c)
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if errors.Is(err, application.ErrNotFound) {
		h.Render.NotFound(c)
		return
	}
	if err != nil {
		h.Render.StorageFailure(c, "get user", err)
		h.Render.ServerError(c)
		return
	}
	h.renderEdit(c, http.StatusOK, id, forms.UserUpdateForm{
		Name:          u.Name,
		Email:         u.Email,
		FavoriteColor: u.FavoriteColor,
	}, nil)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.Render.NotFound(c)
		return
	}
	values := postForm(c)
	f, err := forms.ParseUserUpdate(values)
	if err != nil {
		h.renderEdit(c, http.StatusUnprocessableEntity, id, forms.UserUpdateForm{
			Name:          values.Get("name"),
			Email:         values.Get("email"),
			FavoriteColor: values.Get("favorite_color"),
		}, fieldErrors(err))
		return
	}

	_, err = h.Svc.Update(c.Request.Context(), id, application.UpdateUserInput{
		Name:          f.Name,
		Email:         f.Email,
		FavoriteColor: f.FavoriteColor,
	})
	switch {
	case err == nil:
		h.Render.Flash.Add(c, "User updated successfully")
		h.renderEdit(c, http.StatusOK, id, f, nil)
	case errors.Is(err, application.ErrNotFound):
		h.Render.Flash.Add(c, "Error updating user. Please try again.")
		h.Render.NotFound(c)
	case errors.Is(err, application.ErrConflict):
		h.Render.Flash.Add(c, "Another user already uses that email")
		h.renderEdit(c, http.StatusConflict, id, f, nil)
	default:
		h.Render.StorageFailure(c, "update user", err)
		h.renderEdit(c, http.StatusInternalServerError, id, f, nil)
	}
}

// Delete removes a user and shows the remaining list. It answers GET as well as POST
// so existing /delete/:id links keep working.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.Render.NotFound(c)
		return
	}
	err := h.Svc.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		h.Render.Flash.Add(c, "User deleted successfully")
		h.renderList(c, http.StatusOK, forms.UserForm{}, nil)
	case errors.Is(err, application.ErrNotFound):
		h.Render.Flash.Add(c, "User not found")
		h.renderList(c, failureStatus(err), forms.UserForm{}, nil)
	default:
		h.Render.StorageFailure(c, "delete user", err)
		h.renderList(c, failureStatus(err), forms.UserForm{}, nil)
	}
}
