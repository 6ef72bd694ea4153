package testutils

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/hidaya/internal/config"
	"github.com/nfrund/hidaya/internal/logging"
	"github.com/spf13/afero"
)

// ConfigForTests loads the .env.test file and returns a valid config.Provider.
// This is the definitive way to get configuration for tests that build the
// whole server.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	// 1. Find project root by looking for go.mod to reliably locate .env.test
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	// 2. Manually read the .env.test file.
	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}

	// 3. Use t.Setenv to set the environment variables for this test.
	for key, value := range env {
		t.Setenv(key, value)
	}

	// 4. Now that the environment is set, parse the config without
	// consulting .env.
	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("failed to parse test config: %v", err)
	}
	return cfg
}

// CaptureLogs routes the default slog logger into a buffer for the duration
// of the test.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(logging.NewLogger(&buf, "text", "debug"))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

// ContentFS returns an in-memory file system holding files, keyed by path.
func ContentFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, body := range files {
		if err := afero.WriteFile(fs, name, []byte(body), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return fs
}
