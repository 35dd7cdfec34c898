package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carpkit/carpagent"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	return out.String(), err
}

func TestArgsInvocation(t *testing.T) {
	out, err := execute(t, "", "hello", "world")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "Hello from Basic Agent! You said: hello world\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestJSONLineInvocation(t *testing.T) {
	out, err := execute(t, `{"input": "ping"}`+"\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var resp carpagent.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not one JSON line: %v\n%s", err, out)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope: %+v", resp)
	}
	if resp.Result != "Hello from Basic Agent! You said: ping" {
		t.Fatalf("unexpected result: %q", resp.Result)
	}
	if resp.Agent.Name != "Basic Agent" || resp.Agent.Version != "0.1.0" {
		t.Fatalf("unexpected agent identity: %+v", resp.Agent)
	}
}

func TestPlainLineFallback(t *testing.T) {
	out, err := execute(t, "not json\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "Hello from Basic Agent! You said: not json\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestImmediateEOF(t *testing.T) {
	out, err := execute(t, "")
	if err != nil {
		t.Fatalf("closed stdin should exit clean: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestConfiguredIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `name = "Echo Agent"
version = "2.0.0"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "--config", path, "hi")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "Hello from Echo Agent! You said: hi\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("name = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "", "--config", path, "hi")
	if !errors.Is(err, carpagent.ErrConfigMalformed) {
		t.Fatalf("expected ErrConfigMalformed, got %v", err)
	}
}
