package workflows

import (
	"context"
	"io"

	"github.com/PolarWolf314/shush/internal/audit"
	"github.com/PolarWolf314/shush/internal/environment"
	kerrors "github.com/PolarWolf314/shush/internal/errors"
	"github.com/PolarWolf314/shush/internal/kms"
	"github.com/PolarWolf314/shush/internal/process"
)

// ExecOptions configures the exec workflow.
type ExecOptions struct {
	// Env is rewritten in place, then handed to the command.
	Env environment.Store

	// Gateway performs the KMS calls.
	Gateway kms.Gateway

	// Prefix marks variables holding cipher text.
	Prefix string

	// NoPadding must match the mode the values were encrypted with.
	NoPadding bool

	// Command and Args describe the process to start.
	Command string
	Args    []string

	// Stdio of the child. Nil means the child gets the null device.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// BeforeSpawn runs after substitution succeeded and right before the
	// command starts.
	BeforeSpawn func(*SubstituteResult)
}

// ExecResult contains the outcome of an exec operation.
type ExecResult struct {
	SubstituteResult

	// ExitCode is the command's exit code, or 128 plus the signal number
	// when it was killed by a signal.
	ExitCode int
}

// Exec decrypts prefixed variables and then runs a command with the
// rewritten environment.
//
// The command is never started when substitution fails. Returns
// ErrNoCommand if Command is empty and ErrProcessSpawnFailure if it could
// not be started. A non-zero exit of the command is not an error; it is
// reported in ExecResult.ExitCode.
func Exec(ctx context.Context, opts ExecOptions) (*ExecResult, error) {
	if opts.Command == "" {
		return nil, kerrors.ErrNoCommand
	}

	substituted, err := Substitute(ctx, SubstituteOptions{
		Env:       opts.Env,
		Gateway:   opts.Gateway,
		Prefix:    opts.Prefix,
		NoPadding: opts.NoPadding,
	})
	if err != nil {
		return nil, err
	}

	if opts.BeforeSpawn != nil {
		opts.BeforeSpawn(substituted)
	}

	code, err := process.Run(ctx, process.Command{
		Name:   opts.Command,
		Args:   opts.Args,
		Env:    opts.Env.Environ(),
		Stdin:  opts.Stdin,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	if err != nil {
		return nil, err
	}

	auditEntry := audit.LogWithUser("exec")
	auditEntry.Variables = substituted.Targets()
	auditEntry.Skipped = substituted.Skipped
	auditEntry.Command = opts.Command
	auditEntry.ExitCode = &code
	audit.Log(auditEntry)

	return &ExecResult{SubstituteResult: *substituted, ExitCode: code}, nil
}
