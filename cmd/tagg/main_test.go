package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/tagg/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagg", "config.toml")

	out, err := execute(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output = %q, want path", out)
	}

	settings, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.BackCommand != ":b" {
		t.Errorf("BackCommand = %q, want :b", settings.BackCommand)
	}

	if _, err := execute(t, "--config", path, "config", "init"); err == nil {
		t.Error("second config init without --force succeeded")
	}
	if _, err := execute(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Errorf("config init --force error = %v", err)
	}
}

func TestConfigPath(t *testing.T) {
	out, err := execute(t, "-c", "/tmp/x.json", "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(out) != "/tmp/x.json" {
		t.Errorf("output = %q", out)
	}
}

func TestRoot_RejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.mp3")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "none.toml")

	_, err := execute(t, "--config", cfg, "--plain", file)
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("error = %v, want not a directory", err)
	}
}

func TestRoot_BadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(cfg, []byte("id3_version = 7"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "--config", cfg, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Errorf("error = %v, want load config error", err)
	}
}

func TestRoot_TooManyArgs(t *testing.T) {
	if _, err := execute(t, "a", "b"); err == nil {
		t.Error("two directories accepted")
	}
}
