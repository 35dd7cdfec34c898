package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carpkit/carpagent"
)

type runOptions struct {
	configPath string
	debug      bool
}

// newLogger builds the stderr logger. Stdout is reserved for protocol
// output, so logging stays on the error stream and is off by default.
func newLogger(debug bool, w io.Writer) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	if !debug {
		return logger.Level(zerolog.Disabled)
	}

	return logger.Level(zerolog.DebugLevel)
}

func run(cmd *cobra.Command, args []string, opts *runOptions) error {
	logger := newLogger(opts.debug, cmd.ErrOrStderr())

	cfg, err := carpagent.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	agent := carpagent.New(cfg)
	logger.Debug().
		Str("name", agent.Identity().Name).
		Str("version", agent.Identity().Version).
		Msg("agent ready")

	src := carpagent.SelectSource(args, cmd.InOrStdin())

	text, ok, err := src.Read()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if !ok {
		logger.Debug().Msg("no input, exiting")

		return nil
	}

	out := cmd.OutOrStdout()
	if _, direct := src.(carpagent.ArgsSource); direct {
		return emitPlain(agent, text, out)
	}

	return emitLine(agent, text, out, logger)
}

// emitPlain prints the processing result as a plain line.
func emitPlain(agent *carpagent.Agent, input string, w io.Writer) error {
	result, err := agent.Process(input)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	_, err = fmt.Fprintln(w, result)

	return err
}

// emitLine routes a stream line: a JSON object goes through the envelope,
// anything else is handled as plain text.
func emitLine(agent *carpagent.Agent, line string, w io.Writer, logger zerolog.Logger) error {
	var req carpagent.Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		logger.Debug().Err(err).Msg("not a JSON request, treating line as plain text")

		return emitPlain(agent, line, w)
	}

	resp := agent.HandleRequest(req)

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
