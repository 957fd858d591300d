package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRun_NoTokenReturnsErrNotLoggedIn(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	err := Run(context.Background(), Options{
		ConfigPath:  filepath.Join(dir, "config.toml"),
		SessionPath: filepath.Join(dir, "session.toml"),
	})
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Run error = %v, want ErrNotLoggedIn", err)
	}
}

func TestRun_EmptyTokenAlsoCountsAsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	sessionPath := filepath.Join(dir, "session.toml")
	if err := os.WriteFile(sessionPath, []byte(`
token = "   "
username = "jane"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{
		ConfigPath:  filepath.Join(dir, "config.toml"),
		SessionPath: sessionPath,
	})
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Run error = %v, want ErrNotLoggedIn", err)
	}
}

func TestRun_BadConfigFails(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte(`api_base = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{
		ConfigPath:  configPath,
		SessionPath: filepath.Join(dir, "session.toml"),
	})
	if err == nil || errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Run error = %v, want config parse failure", err)
	}
}
