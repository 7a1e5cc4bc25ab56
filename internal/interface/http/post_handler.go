package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/internal/application"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/interface/forms"
)

type PostHandler struct {
	Render *Renderer
	Svc    *application.PostService
}

func NewPostHandler(render *Renderer, svc *application.PostService) *PostHandler {
	return &PostHandler{Render: render, Svc: svc}
}

func postFormFrom(values map[string][]string) forms.PostForm {
	get := func(k string) string {
		if v := values[k]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	return forms.PostForm{Title: get("title"), Content: get("content"), Author: get("author"), Slug: get("slug")}
}

func (h *PostHandler) AddPage(c *gin.Context) {
	h.Render.HTML(c, http.StatusOK, "add_post.html", gin.H{"Title": "Add post", "Form": forms.PostForm{}})
}

// Add creates a post and redirects back to the empty form.
func (h *PostHandler) Add(c *gin.Context) {
	values := postForm(c)
	f, err := forms.ParsePost(values)
	if err != nil {
		h.Render.HTML(c, http.StatusUnprocessableEntity, "add_post.html", gin.H{
			"Title":  "Add post",
			"Form":   postFormFrom(values),
			"Errors": fieldErrors(err),
		})
		return
	}

	if _, err := h.Svc.Create(c.Request.Context(), application.PostInput{
		Title:   f.Title,
		Content: f.Content,
		Author:  f.Author,
		Slug:    f.Slug,
	}); err != nil {
		h.Render.StorageFailure(c, "create post", err)
		h.Render.HTML(c, http.StatusInternalServerError, "add_post.html", gin.H{"Title": "Add post", "Form": f})
		return
	}
	h.Render.Flash.Add(c, "Blog Post submitted successfully")
	c.Redirect(http.StatusSeeOther, "/add_post")
}

func (h *PostHandler) renderList(c *gin.Context, status int) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Render.StorageFailure(c, "list posts", err)
		status = http.StatusInternalServerError
	}
	h.Render.HTML(c, status, "posts.html", gin.H{"Title": "Blog posts", "Posts": posts})
}

func (h *PostHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK)
}

// load fetches the post named by :id, rendering the 404 page when it is absent
// and the 500 page when storage fails.
func (h *PostHandler) load(c *gin.Context) (*entity.Post, bool) {
	id, ok := idParam(c)
	if !ok {
		h.Render.NotFound(c)
		return nil, false
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if errors.Is(err, application.ErrNotFound) {
		h.Render.NotFound(c)
		return nil, false
	}
	if err != nil {
		h.Render.StorageFailure(c, "get post", err)
		h.Render.ServerError(c)
		return nil, false
	}
	return p, true
}

func (h *PostHandler) Show(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	h.Render.HTML(c, http.StatusOK, "post.html", gin.H{"Title": p.Title, "Post": p})
}

func (h *PostHandler) EditPage(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	h.Render.HTML(c, http.StatusOK, "edit.html", gin.H{
		"Title": "Edit post",
		"ID":    p.ID,
		"Form":  forms.PostForm{Title: p.Title, Content: p.Content, Author: p.Author, Slug: p.Slug},
	})
}

// Edit replaces the post's fields and redirects to the post page.
func (h *PostHandler) Edit(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	values := postForm(c)
	f, err := forms.ParsePost(values)
	if err != nil {
		h.Render.HTML(c, http.StatusUnprocessableEntity, "edit.html", gin.H{
			"Title":  "Edit post",
			"ID":     p.ID,
			"Form":   postFormFrom(values),
			"Errors": fieldErrors(err),
		})
		return
	}

	_, err = h.Svc.Update(c.Request.Context(), p.ID, application.PostInput{
		Title:   f.Title,
		Content: f.Content,
		Author:  f.Author,
		Slug:    f.Slug,
	})
	switch {
	case err == nil:
		h.Render.Flash.Add(c, "Post updated successfully")
		c.Redirect(http.StatusSeeOther, "/posts/"+strconv.FormatInt(p.ID, 10))
	case errors.Is(err, application.ErrNotFound):
		h.Render.NotFound(c)
	default:
		h.Render.StorageFailure(c, "update post", err)
		h.Render.HTML(c, http.StatusInternalServerError, "edit.html", gin.H{"Title": "Edit post", "ID": p.ID, "Form": f})
	}
}

// Delete removes a post and renders the remaining list.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.Render.NotFound(c)
		return
	}
	err := h.Svc.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		h.Render.Flash.Add(c, "Post deleted")
		h.renderList(c, http.StatusOK)
	case errors.Is(err, application.ErrNotFound):
		h.Render.NotFound(c)
	default:
		h.Render.StorageFailure(c, "delete post", err)
		h.renderList(c, http.StatusInternalServerError)
	}
}
