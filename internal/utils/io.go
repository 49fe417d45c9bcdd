package utils

import (
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
)

// StdinArg is the argument that asks a command to read its input from stdin.
const StdinArg = "-"

// ReadInput reads all content from r, normally stdin.
// Returns ErrNoInput if nothing was read.
func ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: stdin is empty", kerrors.ErrNoInput)
	}

	return string(data), nil
}

// ArgOrStdin returns the single positional argument, or reads r when the
// argument is missing or is StdinArg.
func ArgOrStdin(args []string, r io.Reader) (string, error) {
	if len(args) > 0 && args[0] != StdinArg {
		return args[0], nil
	}
	return ReadInput(r)
}
