package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// BuildVersion is stamped into the test binary through -ldflags.
const BuildVersion = "integration"

const commandTimeout = 30 * time.Second

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult is the outcome of one qcreview invocation.
type CommandResult struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
}

func (r CommandResult) String() string {
	return fmt.Sprintf("qcreview %v (exit %d)\nstdout:\n%s\nstderr:\n%s", r.Args, r.ExitCode, r.Stdout, r.Stderr)
}

// BuildBinary compiles ./cmd into a temp directory, once per test run.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			buildErr = err
			return
		}

		dir, err := os.MkdirTemp("", "qcreview-integration-*")
		if err != nil {
			buildErr = fmt.Errorf("failed to create build dir: %w", err)
			return
		}
		binaryPath = filepath.Join(dir, "qcreview")

		var output bytes.Buffer
		cmd := exec.Command("go", "build",
			"-ldflags", "-X main.Version="+BuildVersion,
			"-o", binaryPath, "./cmd")
		cmd.Dir = root
		cmd.Stdout = &output
		cmd.Stderr = &output
		if err := cmd.Run(); err != nil {
			buildErr = fmt.Errorf("go build failed: %w\n%s", err, output.String())
		}
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the build directory.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to remove %s: %v", filepath.Dir(binaryPath), err)
	}
}

// RunCommand runs the binary with args inside env. A command that does not
// finish in time is killed and reported with exit code -1.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Dir = env.Home
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{Args: args}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Errorf("qcreview %v did not finish within %v", args, commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Errorf("qcreview %v could not start: %v", args, err)
		result.ExitCode = -1
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot walks up from the working directory to the go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
