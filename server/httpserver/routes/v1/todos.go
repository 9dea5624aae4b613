package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/THPTUHA/todoweb/server/httpserver/controllers"
)

func Todos(ginApp *gin.RouterGroup, ctr *controllers.Controller) {
	ginApp.Any("/todos", ctr.Todos)
}
