package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-blog/internal/interface/http"
)

// PageModule serves the landing page, greetings and the small demo forms.
// GET /, GET /user/:name, GET /date, GET|POST /name, GET|POST /test_pw
type PageModule struct {
	Handler *handlers.PageHandler
}

func NewPageModule(h *handlers.PageHandler) *PageModule {
	return &PageModule{Handler: h}
}

func (m *PageModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Index)
	rg.GET("/user/:name", m.Handler.User)
	rg.GET("/date", m.Handler.Date)
	rg.GET("/name", m.Handler.NameForm)
	rg.POST("/name", m.Handler.SubmitName)
	rg.GET("/test_pw", m.Handler.PasswordForm)
	rg.POST("/test_pw", m.Handler.SubmitPassword)
}
