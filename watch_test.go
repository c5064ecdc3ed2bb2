package tiltcard

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.yaml")
	if err := os.WriteFile(path, []byte("perspective: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("perspective: 700\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case cfg := <-w.Configs:
		if cfg.Perspective != 700 {
			t.Errorf("Perspective = %v, want 700", cfg.Perspective)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no config delivered after write")
	}
}

func TestConfigWatcherSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.yaml")
	if err := os.WriteFile(path, []byte("perspective: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Writes to other files in the directory are ignored too.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("perspective: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("perspective: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case cfg := <-w.Configs:
		t.Errorf("unexpected config delivered: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestConfigWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-w.Configs; ok {
		t.Error("Configs should be closed after Close")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
