package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
)

// ErrMarkerTimeout indicates the child never printed the expected prompt
// before the deadline.
var ErrMarkerTimeout = errors.New("prompt marker not seen")

// Stock settings for the smoke run.
const (
	DefaultCLIPath   = "/usr/local/bin/carp"
	DefaultDirectory = "/tmp/carp-test-upload"
	DefaultAPIKey    = "carp_test_abcd_efgh_ijkl"
	DefaultSelection = "2"
	DefaultMarker    = "Select an agent"
	DefaultTimeout   = 30 * time.Second
)

// Driver runs one interactive upload flow of the external CLI. The child
// is started under a pseudo-terminal so its interactive prompt behaves as
// it would for a human; the driver waits for the prompt marker before
// answering with the scripted selection.
type Driver struct {
	CLIPath      string
	Directory    string
	APIKey       string
	Selection    string
	PromptMarker string
	Timeout      time.Duration
}

// NewDriver returns a driver with the stock smoke-run settings.
func NewDriver() Driver {
	return Driver{
		CLIPath:      DefaultCLIPath,
		Directory:    DefaultDirectory,
		APIKey:       DefaultAPIKey,
		Selection:    DefaultSelection,
		PromptMarker: DefaultMarker,
		Timeout:      DefaultTimeout,
	}
}

// Argv is the full command line the driver runs.
func (d Driver) Argv() []string {
	return []string{d.CLIPath, "upload", "--directory", d.Directory, "--api-key", d.APIKey, "--verbose"}
}

// Result is the captured outcome of one driven run.
type Result struct {
	Argv     []string
	Output   []byte
	ExitCode int
}

// Run launches the CLI, waits for the prompt marker in its combined
// output, writes the scripted selection followed by end-of-input, and
// drains output until the child exits. A non-zero child exit is data for
// the report, not an error; Run only fails when the child cannot be
// launched, driven, or never reaches its prompt.
func (d Driver) Run(ctx context.Context) (Result, error) {
	argv := d.Argv()
	res := Result{Argv: argv}

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return res, fmt.Errorf("start %s: %w", argv[0], err)
	}

	var (
		mu  sync.Mutex
		out bytes.Buffer
	)

	seen := make(chan struct{})
	done := make(chan struct{})
	marker := []byte(d.PromptMarker)

	go func() {
		defer close(done)

		buf := make([]byte, 4096)
		signalled := len(marker) == 0
		if signalled {
			close(seen)
		}

		for {
			n, readErr := ptmx.Read(buf)
			if n > 0 {
				mu.Lock()
				out.Write(buf[:n])
				if !signalled && bytes.Contains(out.Bytes(), marker) {
					signalled = true
					close(seen)
				}
				mu.Unlock()
			}

			if readErr != nil {
				// EIO here means the child closed its side.
				return
			}
		}
	}()

	select {
	case <-seen:
		// The child may exit between prompt and answer; that shows up in
		// the exit status, so write failures are not fatal.
		_, _ = ptmx.Write(append([]byte(d.Selection), '\n'))
		_, _ = ptmx.Write([]byte{4})
	case <-done:
		// Child exited before prompting. Its output and exit status tell
		// the story; fall through to collect them.
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		_ = ptmx.Close()
		<-done

		mu.Lock()
		res.Output = out.Bytes()
		mu.Unlock()
		res.ExitCode = -1

		return res, fmt.Errorf("%w: %q", ErrMarkerTimeout, d.PromptMarker)
	}

	waitErr := cmd.Wait()
	_ = ptmx.Close()
	<-done

	mu.Lock()
	res.Output = out.Bytes()
	mu.Unlock()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()

			return res, nil
		}

		return res, fmt.Errorf("wait: %w", waitErr)
	}

	return res, nil
}
