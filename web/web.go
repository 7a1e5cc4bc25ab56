// Package web holds the embedded HTML templates served by the blog.
package web

import (
	"embed"
	"errors"
	"html/template"
	"time"
)

//go:embed templates/*.html
var FS embed.FS

// Funcs is available to every page.
var Funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format("2006-01-02 15:04")
	},
	"fieldErr": func(errs map[string]string, field string) string {
		return errs[field]
	},
	"dict": dict,
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, errors.New("dict: keys must be strings")
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// Templates parses every embedded page. Pages share the "header" and "footer" blocks.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(FS, "templates/*.html")
}
