package carpagent

import (
	"bufio"
	"io"
	"strings"
)

// Source yields the raw text for a single agent turn. The boolean result
// reports whether any input was available; callers exit silently when it
// is false.
type Source interface {
	Read() (text string, ok bool, err error)
}

// ArgsSource joins positional command-line arguments with single spaces.
type ArgsSource struct {
	Args []string
}

func (s ArgsSource) Read() (string, bool, error) {
	return strings.Join(s.Args, " "), true, nil
}

// LineSource reads one line from a stream. Immediate end of input is not
// an error; it reports ok=false.
type LineSource struct {
	R io.Reader
}

func (s LineSource) Read() (string, bool, error) {
	line, err := bufio.NewReader(s.R).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	if err == io.EOF {
		if line == "" {
			return "", false, nil
		}

		// Last line without a trailing newline still counts.
		return line, true, nil
	}

	if err != nil {
		return "", false, err
	}

	return line, true, nil
}

// SelectSource picks the input source once at startup: positional
// arguments win over the stream.
func SelectSource(args []string, stdin io.Reader) Source {
	if len(args) > 0 {
		return ArgsSource{Args: args}
	}

	return LineSource{R: stdin}
}
