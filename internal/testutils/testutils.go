package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/collectives/internal/config"
)

// ConfigForTests loads the .env.test file at the project root into the test's
// environment and returns the resulting configuration. The test is skipped
// in short mode or when no usable configuration is found.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	if root, ok := projectRoot(); ok {
		if env, err := godotenv.Read(filepath.Join(root, ".env.test")); err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	return cfg
}

// projectRoot walks up from the working directory to the directory holding
// go.mod.
func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
