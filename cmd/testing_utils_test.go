package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/shush/internal/configs"
	"github.com/PolarWolf314/shush/internal/environment"
	"github.com/PolarWolf314/shush/internal/kms"
)

// setupTestEnvironment isolates a test from the user's config file, the
// real KMS and the real process environment. It returns the fake gateway,
// the in-memory environment exec rewrites, and the config file path.
func setupTestEnvironment(t *testing.T) (*kms.Fake, *environment.Map, string) {
	t.Helper()

	originalGateway := newGateway
	originalEnvironment := processEnvironment
	originalConfig := configs.GlobalConfig
	originalLogger := Logger
	t.Cleanup(func() {
		newGateway = originalGateway
		processEnvironment = originalEnvironment
		configs.GlobalConfig = originalConfig
		Logger = originalLogger
	})

	configFile := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv(configs.ConfigPathEnv, configFile)
	t.Setenv("NO_COLOR", "1")

	fake := &kms.Fake{}
	newGateway = func(ctx context.Context) (kms.Gateway, error) {
		return fake, nil
	}

	env := environment.NewMap("PATH", "/usr/bin:/bin")
	processEnvironment = env

	return fake, env, configFile
}

// runCLI executes a fresh command tree with the given stdin and arguments
// and returns what it wrote to stdout and stderr.
func runCLI(stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// encryptViaCLI returns the token `shush encrypt` prints for plaintext.
func encryptViaCLI(t *testing.T, plaintext string, extraArgs ...string) string {
	t.Helper()
	args := append([]string{"encrypt", "--key", "alias/test"}, extraArgs...)
	args = append(args, plaintext)

	stdout, _, err := runCLI("", args...)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	return stdout
}
