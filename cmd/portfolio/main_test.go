package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")
	missingEnv := filepath.Join(t.TempDir(), "none.env")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"export", "--env-file", missingEnv, "--out", out, "--static", filepath.Join(t.TempDir(), "none")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "Wrote 5 files") {
		t.Fatalf("output = %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
		t.Fatalf("index.html not written: %v", err)
	}
}
