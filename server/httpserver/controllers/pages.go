package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/THPTUHA/todoweb/pkg/todoclient"
	"github.com/THPTUHA/todoweb/pkg/view"
	"github.com/THPTUHA/todoweb/server/httpserver/middlewares"
)

const htmlContentType = "text/html; charset=utf-8"

func (ctr *Controller) Home(c *gin.Context) {
	ctr.render(c, "home.tmpl", &view.Page{Title: "Home"})
}

func (ctr *Controller) TV(c *gin.Context) {
	ctr.render(c, "tv.tmpl", &view.Page{Title: "TV"})
}

func (ctr *Controller) About(c *gin.Context) {
	ctr.render(c, "about.tmpl", &view.Page{Title: "About"})
}

// TodoList fetches /api/todos and renders the result. A failed fetch fails
// the page; nothing is rendered from partial data.
func (ctr *Controller) TodoList(c *gin.Context) {
	base := view.BaseURL(ctr.config.View.APIBaseURL, ctr.config.LocalURL())
	client := todoclient.New(base, ctr.httpClient)

	page, err := view.Load(c.Request.Context(), client)
	if err != nil {
		ctr.logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString(middlewares.RequestIDKey),
			"url":        client.URL(),
		}).Error("load to-do list")
		ctr.fail(c, err)
		return
	}
	ctr.render(c, "todos.tmpl", page)
}

// NotFound uses gin's html renderer with the template set on the engine.
func (ctr *Controller) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
		})
		return
	}
	c.HTML(http.StatusNotFound, "notfound.tmpl", &view.Page{Title: "Not Found"})
}

func (ctr *Controller) render(c *gin.Context, name string, page *view.Page) {
	c.Header("Content-Type", htmlContentType)
	if err := ctr.renderer.Render(c.Writer, name, page); err != nil {
		ctr.logger.WithError(err).WithField("request_id", c.GetString(middlewares.RequestIDKey)).Error("render page")
		if !c.Writer.Written() {
			ctr.fail(c, err)
		}
	}
}

func (ctr *Controller) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
