package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/timhillgit/asymmetrik/pkg/server"
	"github.com/timhillgit/asymmetrik/pkg/suggest"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve [training-source]",
		Short: "Serve completions as msgpack over stdin/stdout",
		Long: `serve starts the msgpack IPC server. The optional training source is
loaded once at startup; more text can be trained through "train" requests.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := suggest.NewProvider()
			if len(args) == 1 {
				var err error
				provider, err = trainProvider(opts.config, args[0])
				if err != nil {
					return err
				}
			} else {
				log.Warn("No training source given, starting with an empty index")
			}

			log.Debug("spawning IPC")
			srv := server.NewServer(provider, opts.config, cmd.InOrStdin(), cmd.OutOrStdout())
			return srv.Start()
		},
	}
}
