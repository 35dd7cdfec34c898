package main

import (
	"github.com/spf13/cobra"

	"github.com/carpkit/carpagent"
)

func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	root := &cobra.Command{
		Use:           "carpagent [input...]",
		Short:         "Single-turn text agent with a JSON request/response envelope",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	root.Flags().StringVar(&opts.configPath, "config", carpagent.ConfigFileName, "path to the agent config file")
	root.Flags().BoolVar(&opts.debug, "debug", false, "log request handling to stderr")

	return root
}
