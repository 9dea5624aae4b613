package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"

	"github.com/THPTUHA/todoweb/pkg/logger"
	"github.com/THPTUHA/todoweb/pkg/todo"
	"github.com/THPTUHA/todoweb/pkg/view"
	"github.com/THPTUHA/todoweb/server/httpserver/config"
	"github.com/THPTUHA/todoweb/server/httpserver/controllers"
	"github.com/THPTUHA/todoweb/server/httpserver/routes"
	"github.com/THPTUHA/todoweb/server/httpserver/routes/ui"
)

const shutdownTimeout = 5 * time.Second

type HttpServer struct {
	Router *gin.Engine
	Config *config.Configs
	Logger *logrus.Entry
}

func NewHTTPServer(config *config.Configs) (*HttpServer, error) {
	server := &HttpServer{}
	if err := server.initialize(config); err != nil {
		return nil, err
	}
	return server, nil
}

func (server *HttpServer) initialize(config *config.Configs) error {
	server.Config = config
	server.Logger = logger.InitLogger(config.LogLevel, config.NodeName)

	if err := todo.CheckFixed(); err != nil {
		return err
	}

	t, err := ui.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	ctr := controllers.NewController(&controllers.ControllerConfig{
		Config:     config,
		Renderer:   view.NewRenderer(t),
		Logger:     server.Logger,
		HTTPClient: &http.Client{},
	})
	server.Router = routes.Build(ctr, t, server.Logger)
	return nil
}

// Start listens on the configured address and serves until ctx is done.
func (server *HttpServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", server.Config.Addr())
	if err != nil {
		return err
	}
	return server.Serve(ctx, ln)
}

// Serve owns ln. When ctx is cancelled in-flight requests get
// shutdownTimeout to finish.
func (server *HttpServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           server.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	log.Info().Str("addr", ln.Addr().String()).Msg("Starting the server...")
	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("Server is not running!")
		return err
	case <-ctx.Done():
	}

	log.Warn().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Send()
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
