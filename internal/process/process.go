// Package process starts the command handed to exec and relays its exit
// status.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
)

// Command describes the child process to run.
type Command struct {
	Name string
	Args []string

	// Env is the complete environment of the child, NAME=value.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts c, forwards terminate signals to it and waits.
//
// Interrupts are caught but not forwarded: Ctrl-C is delivered by the
// terminal to the whole foreground process group, child included, so
// sending it again would make the child see it twice. Run keeps waiting so
// the child's exit status is still relayed.
//
// The returned code is the child's exit status, or 128 plus the signal
// number when the child was killed by a signal. An error is returned only
// when the child could not be started or waited on.
//
// ctx is only consulted before starting: once the child runs, it is stopped
// by the signals it receives, not by cancellation.
func Run(ctx context.Context, c Command) (int, error) {
	if c.Name == "" {
		return 0, kerrors.ErrNoCommand
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w %s: %w", kerrors.ErrProcessSpawnFailure, c.Name, err)
	}

	cmd := exec.Command(c.Name, c.Args...)
	cmd.Env = c.Env
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("%w %s: %w", kerrors.ErrProcessSpawnFailure, c.Name, err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-signals:
				if !forwarded(sig) {
					continue
				}
				// The child may already be gone; nothing to do then.
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, fmt.Errorf("waiting for %s: %w", c.Name, err)
	}
	return exitCode(exitErr.ProcessState), nil
}

// forwarded reports whether sig is relayed to the child.
func forwarded(sig os.Signal) bool {
	return sig != os.Interrupt
}

func exitCode(state *os.ProcessState) int {
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return state.ExitCode()
}
