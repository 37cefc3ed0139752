package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	t.Setenv("CALC_ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	if err := loadDotEnv(); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "CALC_ADDR=:9999\nCALC_TEST_ONLY_FROM_FILE=loaded\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv("CALC_ENV_FILE", path)
	t.Setenv("CALC_ADDR", ":7000")
	t.Setenv("CALC_TEST_ONLY_FROM_FILE", "")
	os.Unsetenv("CALC_TEST_ONLY_FROM_FILE")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := os.Getenv("CALC_ADDR"); got != ":7000" {
		t.Fatalf("expected existing CALC_ADDR to win, got %q", got)
	}
	if got := os.Getenv("CALC_TEST_ONLY_FROM_FILE"); got != "loaded" {
		t.Fatalf("expected value from file, got %q", got)
	}
}
