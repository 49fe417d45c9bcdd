package errors

import (
	"errors"
	"fmt"
)

// Encoding errors indicate a ciphertext token could not be turned back into bytes.
var (
	// ErrDecodeFailure indicates the ciphertext is not valid for the selected padding mode.
	ErrDecodeFailure = errors.New("could not decode cipher text")
)

// Remote errors indicate the key management service call did not produce a usable result.
var (
	// ErrRemoteFailure indicates the KMS call failed or returned an incomplete response.
	ErrRemoteFailure = errors.New("key management service request failed")

	// ErrMissingCiphertext indicates an encrypt call succeeded but returned no cipher text.
	ErrMissingCiphertext = errors.New("could not get encrypted cipher text")

	// ErrMissingPlaintext indicates a decrypt call succeeded but returned no plain text.
	ErrMissingPlaintext = errors.New("could not get decrypted plain text")
)

// Exec errors indicate the environment substitution or the child process failed.
var (
	// ErrProcessSpawnFailure indicates the target command could not be launched.
	ErrProcessSpawnFailure = errors.New("could not start command")

	// ErrEmptyVariableName indicates a candidate variable is named exactly the prefix.
	ErrEmptyVariableName = errors.New("variable name is empty after removing the prefix")

	// ErrEmptyPrefix indicates exec was given an empty prefix, which would
	// match every variable.
	ErrEmptyPrefix = errors.New("prefix cannot be empty")

	// ErrNoCommand indicates exec was invoked without a command to run.
	ErrNoCommand = errors.New("no command given")
)

// Input errors indicate the user supplied unusable arguments or configuration.
var (
	// ErrEmptyKeyReference indicates an empty --key value.
	ErrEmptyKeyReference = errors.New("key reference cannot be empty")

	// ErrNoInput indicates stdin was requested but nothing could be read.
	ErrNoInput = errors.New("no input provided")

	// ErrInvalidConfig indicates the config file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")
)

// ExitError carries a child process exit code up to main without printing anything.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}
