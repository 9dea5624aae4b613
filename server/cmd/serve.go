package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/run"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/THPTUHA/todoweb/server/httpserver"
	"github.com/THPTUHA/todoweb/server/httpserver/config"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pages and /api/todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return serveRun(cmd.Context(), config)
		},
	}
	addViewFlags(serveCmd)
	serveCmd.Flags().Int("port", config.DefaultPort, "Listen port")
	serveCmd.Flags().String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	return serveCmd
}

func serveRun(ctx context.Context, config *config.Configs) error {
	if ctx == nil {
		ctx = context.Background()
	}
	server, err := httpserver.NewHTTPServer(config)
	if err != nil {
		return err
	}

	var g run.Group
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return server.Start(ctx)
		}, func(error) {
			cancel()
		})
	}
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return watchSignals(ctx)
		}, func(error) {
			cancel()
		})
	}
	err = g.Run()
	var sigErr signalError
	if errors.As(err, &sigErr) {
		return nil
	}
	return err
}

type signalError struct {
	sig os.Signal
}

func (e signalError) Error() string {
	return fmt.Sprintf("received signal %s", e.sig)
}

func watchSignals(ctx context.Context) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		log.Warn().Str("signal", sig.String()).Msg("Shutting down...")
		return signalError{sig: sig}
	case <-ctx.Done():
		return nil
	}
}
