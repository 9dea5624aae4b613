package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/THPTUHA/todoweb/server/httpserver/controllers"
	"github.com/THPTUHA/todoweb/server/httpserver/middlewares"
	"github.com/THPTUHA/todoweb/server/httpserver/routes/ui"
	v1 "github.com/THPTUHA/todoweb/server/httpserver/routes/v1"
)

func initialize(ginApp *gin.Engine, ctr *controllers.Controller, t *template.Template) {
	ginApp.SetHTMLTemplate(t)

	rootPath := ginApp.Group("/")
	ui.UI(rootPath, ctr)

	routeGroup := ginApp.Group("/api")
	v1.Todos(routeGroup, ctr)

	ginApp.NoRoute(ctr.NotFound)
}

func Build(ctr *controllers.Controller, t *template.Template, log *logrus.Entry) *gin.Engine {
	ginApp := gin.New()
	ginApp.HandleMethodNotAllowed = true
	ginApp.Use(gin.Recovery())
	ginApp.Use(middlewares.RequestID())
	ginApp.Use(middlewares.AccessLog(log))
	ginApp.Use(middlewares.CORSMiddleware())
	initialize(ginApp, ctr, t)

	return ginApp
}
