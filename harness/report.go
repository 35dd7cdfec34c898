package harness

import (
	"fmt"
	"io"
	"strings"
)

const separatorWidth = 50

// WriteReport prints the prepared command line, the captured combined
// output, a visual separator, and the numeric exit status, in that order.
func (r Result) WriteReport(w io.Writer) error {
	sep := strings.Repeat("=", separatorWidth)

	if _, err := fmt.Fprintf(w, "Running command: %s\n%s\n", strings.Join(r.Argv, " "), sep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	output := string(r.Output)
	if output != "" && !strings.HasSuffix(output, "\n") {
		output += "\n"
	}

	if _, err := fmt.Fprintf(w, "CLI Output:\n%s%s\nExit code: %d\n", output, sep, r.ExitCode); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
