package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/tiltcard"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := tiltcard.ParseConfig([]byte(out))
	if err != nil {
		t.Fatalf("printed config does not parse: %v\n%s", err, out)
	}
	if cfg != tiltcard.DefaultConfig() {
		t.Errorf("printed config differs from defaults:\n%s", out)
	}
}

func TestConfigCommandWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(path, []byte("perspective: 640\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "perspective: 640") {
		t.Errorf("output missing override:\n%s", out)
	}

	out, err = execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	// main only sets the exit status; the message comes from cobra.
	if !strings.Contains(out, "Error: ") || !strings.Contains(out, "missing.yaml") {
		t.Errorf("error not reported to the user:\n%s", out)
	}
}

func TestResponseCommand(t *testing.T) {
	out, err := execute(t, "response", "--width", "40", "--height", "6", "--stiffness", "200")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "step response, stiffness=200 damping=30") {
		t.Errorf("missing caption:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < 6 {
		t.Errorf("plot has %d lines, want at least 6", lines)
	}

	if _, err := execute(t, "response", "--time", "0"); err == nil {
		t.Error("expected error for zero duration")
	}
}
