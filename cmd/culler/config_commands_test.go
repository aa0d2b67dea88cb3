package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCuller(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Errorf("unexpected init output:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, err = runCuller(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Errorf("unexpected validate output:\n%s", out)
	}

	// A second init against the same path must refuse to overwrite.
	if _, err := runCuller(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting an existing file")
	}
}

func TestConfigShowReportsEffectiveValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCuller(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"fuzzy_threshold", "ledger", ".mkv"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryEmptyLedger(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCuller(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("unexpected history output:\n%s", out)
	}
}
