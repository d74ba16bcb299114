package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HaldisBrandt/relpick/internal/testutil"
)

const testManifest = `{
	"version": "1.0.0",
	"assets": [
		{
			"name": "gnu.tgz",
			"target": "x86_64-unknown-linux-gnu",
			"url": "https://example.com/gnu.tgz",
			"sha256": "dead"
		},
		{
			"name": "musl.tgz",
			"target": "x86_64-unknown-linux-musl",
			"url": "https://example.com/musl.tgz",
			"sha256": "beef"
		}
	]
}`

func writeTestManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release.json")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestRunResolve_ExplicitTarget(t *testing.T) {
	testutil.ClearResolutionEnv(t)
	path := writeTestManifest(t)

	err := runResolve([]string{"--manifest", path, "--target", "x86_64-unknown-linux-gnu"})
	if err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}
}

func TestRunResolve_JSONOutput(t *testing.T) {
	testutil.ClearResolutionEnv(t)
	path := writeTestManifest(t)

	err := runResolve([]string{"--manifest", path, "--target", "x86_64-unknown-linux-musl", "--json"})
	if err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}
}

func TestRunResolve_EnvOverride(t *testing.T) {
	testutil.ClearResolutionEnv(t)
	t.Setenv("RELPICK_TARGET", "x86_64-unknown-linux-musl")
	path := writeTestManifest(t)

	// Detected/flag target is gnu, but the env override must win.
	err := runResolve([]string{"--manifest", path, "--target", "x86_64-unknown-linux-gnu"})
	if err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}
}

func TestRunResolve_MissingTarget(t *testing.T) {
	testutil.ClearResolutionEnv(t)
	path := writeTestManifest(t)

	err := runResolve([]string{"--manifest", path, "--target", "aarch64-apple-darwin"})
	if err == nil {
		t.Fatal("runResolve() expected error for target absent from manifest")
	}
}

func TestRunResolve_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no manifest", []string{}},
		{"manifest missing value", []string{"--manifest"}},
		{"target missing value", []string{"--manifest", "m.json", "--target"}},
		{"unknown flag", []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runResolve(tt.args); err == nil {
				t.Error("runResolve() expected error")
			}
		})
	}
}

func TestRunResolve_Help(t *testing.T) {
	if err := runResolve([]string{"--help"}); err != nil {
		t.Errorf("runResolve(--help) error = %v", err)
	}
}

func TestRunDetect(t *testing.T) {
	if err := runDetect([]string{}); err != nil {
		t.Errorf("runDetect() error = %v", err)
	}
	if err := runDetect([]string{"--json"}); err != nil {
		t.Errorf("runDetect(--json) error = %v", err)
	}
	if err := runDetect([]string{"--bogus"}); err == nil {
		t.Error("runDetect(--bogus) expected error")
	}
}
