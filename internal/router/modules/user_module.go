package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-blog/internal/interface/http"
)

// UserModule wires the user account pages.
// GET|POST /user/add, GET|POST /update/:id, GET|POST /delete/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/user/add", m.Handler.AddPage)
	rg.POST("/user/add", m.Handler.Add)
	rg.GET("/update/:id", m.Handler.EditPage)
	rg.POST("/update/:id", m.Handler.Update)
	// GET stays for links that predate the POST form.
	rg.GET("/delete/:id", m.Handler.Delete)
	rg.POST("/delete/:id", m.Handler.Delete)
}
