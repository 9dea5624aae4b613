package ui

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/THPTUHA/todoweb/server/httpserver/controllers"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates. Each page is named after its
// file; layout.tmpl and header.tmpl only hold shared blocks.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}

func UI(r *gin.RouterGroup, ctr *controllers.Controller) {
	r.GET("/", ctr.Home)
	r.GET("/tv", ctr.TV)
	r.GET("/todos", ctr.TodoList)
	r.GET("/about", ctr.About)
}
