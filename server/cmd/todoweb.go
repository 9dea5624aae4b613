package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/THPTUHA/todoweb/server/httpserver/config"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0"

type rootOptions struct {
	file string
	v    *viper.Viper
}

func newTodowebCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}
	todowebCmd := &cobra.Command{
		Use:           "todoweb",
		Short:         "To-do board web server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	todowebCmd.PersistentFlags().StringVar(&opts.file, "file", config.DefaultFile, "Config file")

	todowebCmd.AddCommand(
		newServeCmd(opts),
		newFetchCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return todowebCmd
}

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"port":         "httpserver.port",
	"log-level":    "logLevel",
	"api-base-url": "view.apiBaseUrl",
}

// load binds the running command's flags and reads the config. The file only
// has to exist when --file was given.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Configs, error) {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := o.v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}
	required := cmd.Flags().Changed("file")
	return config.Get(o.v, o.file, required)
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().String("api-base-url", "", "Base url of the todos api (default: this server on localhost)")
}

func Execute() {
	if err := newTodowebCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
