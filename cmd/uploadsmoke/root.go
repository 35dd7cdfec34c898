package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carpkit/carpagent/harness"
)

type smokeOptions struct {
	cliPath   string
	directory string
	apiKey    string
	selection string
	marker    string
	timeout   time.Duration
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &smokeOptions{}
	root := &cobra.Command{
		Use:           "uploadsmoke",
		Short:         "Manually exercise the carp upload flow against a prepared fixture",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSmoke(cmd, opts)
		},
	}

	root.Flags().StringVar(&opts.cliPath, "cli-path", harness.DefaultCLIPath, "path to the carp binary")
	root.Flags().StringVar(&opts.directory, "directory", harness.DefaultDirectory, "scratch directory for the fixture")
	root.Flags().StringVar(&opts.apiKey, "api-key", harness.DefaultAPIKey, "api key passed to the upload command")
	root.Flags().StringVar(&opts.selection, "selection", harness.DefaultSelection, "scripted menu selection")
	root.Flags().StringVar(&opts.marker, "marker", harness.DefaultMarker, "prompt text to wait for before answering")
	root.Flags().DurationVar(&opts.timeout, "timeout", harness.DefaultTimeout, "deadline for the driven run")
	root.Flags().BoolVar(&opts.verbose, "verbose", false, "log harness steps to stderr")

	return root
}

func newLogger(verbose bool, w io.Writer) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	if !verbose {
		return logger.Level(zerolog.InfoLevel)
	}

	return logger.Level(zerolog.DebugLevel)
}

// runSmoke prepares the fixture and drives one upload flow. This is a
// diagnostic script: driver failures are reported, never returned, so the
// run itself always exits clean.
func runSmoke(cmd *cobra.Command, opts *smokeOptions) error {
	logger := newLogger(opts.verbose, cmd.ErrOrStderr())

	fixturePath, err := harness.WriteFixture(opts.directory, harness.DefaultFixture())
	if err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	logger.Debug().Str("path", fixturePath).Msg("created test agent file")

	driver := harness.Driver{
		CLIPath:      opts.cliPath,
		Directory:    opts.directory,
		APIKey:       opts.apiKey,
		Selection:    opts.selection,
		PromptMarker: opts.marker,
		Timeout:      opts.timeout,
	}

	res, err := driver.Run(cmd.Context())
	if err != nil {
		logger.Error().Err(err).Msg("upload run failed")
		_, werr := fmt.Fprintf(cmd.OutOrStdout(), "Error running CLI: %v\n", err)

		return werr
	}

	return res.WriteReport(cmd.OutOrStdout())
}
