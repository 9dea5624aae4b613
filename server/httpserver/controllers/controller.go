package controllers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/THPTUHA/todoweb/pkg/view"
	"github.com/THPTUHA/todoweb/server/httpserver/config"
)

type ControllerConfig struct {
	Config   *config.Configs
	Renderer *view.Renderer
	Logger   *logrus.Entry
	// HTTPClient is used by the to-do page to reach /api/todos.
	HTTPClient *http.Client
}

type Controller struct {
	config     *config.Configs
	renderer   *view.Renderer
	logger     *logrus.Entry
	httpClient *http.Client
}

func NewController(ctrconf *ControllerConfig) *Controller {
	return &Controller{
		config:     ctrconf.Config,
		renderer:   ctrconf.Renderer,
		logger:     ctrconf.Logger,
		httpClient: ctrconf.HTTPClient,
	}
}
