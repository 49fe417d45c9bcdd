package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strconv"
	"testing"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not found in PATH")
	}
	return sh
}

func TestRunPassesEnvironmentAndOutput(t *testing.T) {
	sh := requireShell(t)

	var stdout bytes.Buffer
	code, err := Run(context.Background(), Command{
		Name:   sh,
		Args:   []string{"-c", `printf '%s' "$SECRET"`},
		Env:    []string{"SECRET=super secret"},
		Stdout: &stdout,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if stdout.String() != "super secret" {
		t.Errorf("Expected output %q, got %q", "super secret", stdout.String())
	}
}

func TestRunRelaysExitCode(t *testing.T) {
	sh := requireShell(t)

	for _, want := range []int{1, 3, 42} {
		code, err := Run(context.Background(), Command{
			Name: sh,
			Args: []string{"-c", "exit " + strconv.Itoa(want)},
		})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if code != want {
			t.Errorf("Expected exit code %d, got %d", want, code)
		}
	}
}

func TestRunReportsSignal(t *testing.T) {
	sh := requireShell(t)

	code, err := Run(context.Background(), Command{
		Name: sh,
		Args: []string{"-c", "kill -9 $$"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if code != 128+9 {
		t.Errorf("Expected exit code %d, got %d", 128+9, code)
	}
}

func TestRunMissingCommand(t *testing.T) {
	_, err := Run(context.Background(), Command{Name: "shush-definitely-not-a-command"})
	if !errors.Is(err, kerrors.ErrProcessSpawnFailure) {
		t.Errorf("Expected ErrProcessSpawnFailure, got %v", err)
	}
}

func TestRunEmptyCommand(t *testing.T) {
	_, err := Run(context.Background(), Command{})
	if !errors.Is(err, kerrors.ErrNoCommand) {
		t.Errorf("Expected ErrNoCommand, got %v", err)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Command{Name: "true"})
	if !errors.Is(err, kerrors.ErrProcessSpawnFailure) {
		t.Errorf("Expected ErrProcessSpawnFailure, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
