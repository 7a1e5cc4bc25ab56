package router

import "github.com/gin-gonic/gin"

// Module is a feature area that registers its pages on the site root group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
