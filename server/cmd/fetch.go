package cmd

import (
	"github.com/spf13/cobra"

	"github.com/THPTUHA/todoweb/pkg/todoclient"
	"github.com/THPTUHA/todoweb/pkg/view"
	"github.com/THPTUHA/todoweb/server/httpserver/config"
)

func newFetchCmd(opts *rootOptions) *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print the to-do list as the /todos page shows it",
		Long: `Fetch /api/todos once and print one "<id> - <task>" line per record.
Without --api-base-url the local server on the configured port is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.load(cmd)
			if err != nil {
				return err
			}
			base := view.BaseURL(config.View.APIBaseURL, config.LocalURL())
			tasks, err := todoclient.New(base, nil).List(cmd.Context())
			if err != nil {
				return err
			}
			return view.WriteLines(cmd.OutOrStdout(), tasks)
		},
	}
	addViewFlags(fetchCmd)
	fetchCmd.Flags().Int("port", config.DefaultPort, "Port of the local server")
	return fetchCmd
}
