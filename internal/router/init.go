package router

import (
	"github.com/oksasatya/go-ddd-blog/internal/container"
	handlers "github.com/oksasatya/go-ddd-blog/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog/internal/router/modules"
)

// InitModules builds the handlers from c and registers every feature module.
func InitModules(r *Registry, c *container.Container) *handlers.Renderer {
	render := handlers.NewRenderer(c.Flash, c.Logger)

	r.Add(modules.NewPageModule(handlers.NewPageHandler(render, c.Users)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(render, c.Users)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(render, c.Posts)))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return render
}
