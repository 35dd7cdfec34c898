// Package harness exercises the interactive upload flow of the externally
// built carp CLI for manual diagnosis. It prepares an agent descriptor
// fixture on disk, drives one scripted menu selection through the CLI,
// and reports the captured output and exit status.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	fixtureDirPerm  = 0o755
	fixtureFilePerm = 0o644
)

// FixtureFileName is the agent descriptor written into the scratch directory.
const FixtureFileName = "test-agent.md"

// Fixture describes an agent descriptor file: YAML front matter followed
// by a Markdown body.
type Fixture struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Version     string   `yaml:"version"`
	Tags        []string `yaml:"tags"`
	Body        string   `yaml:"-"`
}

// DefaultFixture returns the descriptor the smoke run offers for upload.
func DefaultFixture() Fixture {
	return Fixture{
		Name:        "test-batch-upload",
		Description: "Test agent for batch upload debugging",
		Version:     "1.0.0",
		Tags:        []string{"test", "debug", "batch"},
		Body:        "# Test Batch Upload Agent\n\nThis is a test agent to debug the batch upload functionality.\n",
	}
}

// Encode renders the descriptor as a front-matter block delimited by
// "---" lines, a blank line, and the body.
func (f Fixture) Encode() ([]byte, error) {
	meta, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(f.Body)

	return b.Bytes(), nil
}

// WriteFixture creates dir if needed and writes the descriptor into it,
// overwriting any previous content. The fixture is deliberately left
// behind after the run.
func WriteFixture(dir string, f Fixture) (string, error) {
	if err := os.MkdirAll(dir, fixtureDirPerm); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	data, err := f.Encode()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FixtureFileName)
	if err := os.WriteFile(path, data, fixtureFilePerm); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}
