package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-blog/internal/interface/http"
)

// PostModule wires the blog post pages.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/add_post", m.Handler.AddPage)
	rg.POST("/add_post", m.Handler.Add)

	posts := rg.Group("/posts")
	{
		posts.GET("", m.Handler.List)
		posts.GET("/:id", m.Handler.Show)
		posts.GET("/edit/:id", m.Handler.EditPage)
		posts.POST("/edit/:id", m.Handler.Edit)
		posts.POST("/delete/:id", m.Handler.Delete)
	}
}
