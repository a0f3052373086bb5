package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	want := []string{"upload", "verify", "media", "verifications", "status", "test-notify", "config"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"config", "init", "--path", target})

	if err := root.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config: %v", err)
	}
	if !strings.Contains(out.String(), target) {
		t.Fatalf("output missing target path: %q", out.String())
	}

	// Second run without --overwrite must refuse.
	retry := newRootCommand()
	retry.SetOut(&out)
	retry.SetErr(&out)
	retry.SetArgs([]string{"config", "init", "--path", target})
	if err := retry.Execute(); err == nil {
		t.Fatal("expected error when config already exists")
	}

	// And succeed with --overwrite.
	overwrite := newRootCommand()
	overwrite.SetOut(&out)
	overwrite.SetErr(&out)
	overwrite.SetArgs([]string{"config", "init", "--path", target, "--overwrite"})
	if err := overwrite.Execute(); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}
}

func TestConfigPathCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"config", "path"})

	if err := root.Execute(); err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(out.String(), "config.toml") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
