package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()

	if cmd.Use != "version" {
		t.Errorf("Expected Use='version', got '%s'", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("descriptions should not be empty")
	}
	if cmd.Run == nil {
		t.Error("Run function should not be nil")
	}
}

func TestVersionCommand_Output(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	var buf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "catalogcheck version v1.2.3") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("missing Go version line: %q", out)
	}
}

func TestCurrent_EmptyFallsBackToDev(t *testing.T) {
	old := Version
	Version = ""
	defer func() { Version = old }()

	if got := current(); got != "dev" {
		t.Errorf("current() = %q, want dev", got)
	}
}
