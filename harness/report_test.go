package harness

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReportOrder(t *testing.T) {
	res := Result{
		Argv:     []string{"/usr/local/bin/carp", "upload", "--verbose"},
		Output:   []byte("menu\npicked 2\n"),
		ExitCode: 3,
	}

	var buf bytes.Buffer
	if err := res.WriteReport(&buf); err != nil {
		t.Fatalf("write report: %v", err)
	}

	out := buf.String()
	markers := []string{
		"Running command: /usr/local/bin/carp upload --verbose",
		strings.Repeat("=", 50),
		"CLI Output:\nmenu\npicked 2\n",
		"Exit code: 3",
	}

	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		if idx < 0 {
			t.Fatalf("report missing %q:\n%s", m, out)
		}
		if idx < last {
			t.Fatalf("report section %q out of order:\n%s", m, out)
		}
		last = idx
	}
}

func TestWriteReportTerminatesOutput(t *testing.T) {
	res := Result{
		Argv:   []string{"carp", "upload"},
		Output: []byte("no trailing newline"),
	}

	var buf bytes.Buffer
	if err := res.WriteReport(&buf); err != nil {
		t.Fatalf("write report: %v", err)
	}

	if !strings.Contains(buf.String(), "no trailing newline\n"+strings.Repeat("=", 50)) {
		t.Fatalf("separator should start on its own line:\n%s", buf.String())
	}
}
