// Package testsupport builds the CLI for testscript suites.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce    sync.Once
	tasklistsBin string
	buildErr     error
)

// BuildTasklists builds the tasklists binary once and returns its path.
func BuildTasklists(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tasklists-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tasklistsBin = filepath.Join(binDir, "tasklists")
		cmd := exec.Command("go", "build", "-o", tasklistsBin, "./cmd/tasklists")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tasklists: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tasklistsBin
}

// SetupScriptEnv points $TASKLISTS at the binary and keeps every script's
// data inside its work directory.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TASKLISTS", BuildTasklists(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share"))
	env.Setenv("TASKLISTS_DATA", filepath.Join(env.WorkDir, "data"))
	env.Setenv("TASKLISTS_LOG_LEVEL", "warn")
	return nil
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
