// Package integration provides CLI integration tests for inboxctl.
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// inboxctlBin is the path to the built inboxctl binary.
	inboxctlBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetInboxctlBin sets the path to the inboxctl binary (called from TestMain).
func SetInboxctlBin(path string) {
	inboxctlBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and cache directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	CacheDir  string
	BaseURL   string
}

// NewTestEnv creates a new isolated test environment pointed at the given API base URL.
func NewTestEnv(t *testing.T, baseURL string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build inboxctl: %v", buildErr)
	}
	if inboxctlBin == "" {
		t.Fatal("inboxctl binary not built (inboxctlBin is empty)")
	}

	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "cache")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "base_url: " + baseURL + "\naccess_token: test-token\ncache_dir: " + cacheDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		CacheDir:  cacheDir,
		BaseURL:   baseURL,
	}
}

// CmdResult holds the result of an inboxctl command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunInboxctl executes the inboxctl CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunInboxctl(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--cache-dir", e.CacheDir}, args...)
	cmd := exec.Command(inboxctlBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run inboxctl: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunInboxctl executes the inboxctl CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunInboxctl(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunInboxctl(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("inboxctl %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Lines splits output into non-empty lines.
func Lines(s string) []string {
	var out []string
	scanner := bufio.NewScanner(bytes.NewBufferString(s))
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
