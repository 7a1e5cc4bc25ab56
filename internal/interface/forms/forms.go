// Package forms turns submitted form fields into validated input records.
package forms

import (
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"

	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

// ValidationFailure lists the fields that failed and why. It is always recoverable.
type ValidationFailure struct {
	Fields map[string]string
}

func (v *ValidationFailure) Error() string {
	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+v.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (v *ValidationFailure) Has(field string) bool {
	_, ok := v.Fields[field]
	return ok
}

type NameForm struct {
	Name string `form:"name" binding:"notblank"`
}

type PasswordLoginForm struct {
	Email    string `form:"email" binding:"notblank"`
	Password string `form:"password" binding:"notblank"`
}

type UserForm struct {
	Name            string `form:"name" binding:"notblank"`
	Email           string `form:"email" binding:"notblank"`
	FavoriteColor   string `form:"favorite_color"`
	Password        string `form:"password" binding:"notblank"`
	PasswordConfirm string `form:"password_confirm" binding:"notblank,eqfield=Password"`
}

// UserUpdateForm covers the fields editable after creation.
type UserUpdateForm struct {
	Name          string `form:"name" binding:"notblank"`
	Email         string `form:"email" binding:"notblank"`
	FavoriteColor string `form:"favorite_color"`
}

type PostForm struct {
	Title   string `form:"title" binding:"notblank"`
	Content string `form:"content" binding:"notblank"`
	Author  string `form:"author" binding:"notblank"`
	Slug    string `form:"slug" binding:"notblank"`
}

func (f *NameForm) normalize() { f.Name = strings.TrimSpace(f.Name) }

func (f *PasswordLoginForm) normalize() { f.Email = strings.TrimSpace(f.Email) }

func (f *UserForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
}

func (f *UserUpdateForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
}

func (f *PostForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)
	f.Slug = strings.TrimSpace(f.Slug)
}

type normalizer interface {
	normalize()
}

// parse maps values onto T, validates it and trims identifying fields.
// Passwords and content are kept exactly as submitted.
func parse[T any, PT interface {
	*T
	normalizer
}](values url.Values) (T, error) {
	var out T
	if err := binding.MapFormWithTag(&out, values, "form"); err != nil {
		return out, &ValidationFailure{Fields: map[string]string{"form": "invalid form data"}}
	}
	if err := validation.Struct(&out); err != nil {
		return out, &ValidationFailure{Fields: validation.ToDetails(err)}
	}
	PT(&out).normalize()
	return out, nil
}

func ParseName(values url.Values) (NameForm, error) { return parse[NameForm](values) }

func ParsePasswordLogin(values url.Values) (PasswordLoginForm, error) {
	return parse[PasswordLoginForm](values)
}

func ParseUser(values url.Values) (UserForm, error) { return parse[UserForm](values) }

func ParseUserUpdate(values url.Values) (UserUpdateForm, error) {
	return parse[UserUpdateForm](values)
}

func ParsePost(values url.Values) (PostForm, error) { return parse[PostForm](values) }
