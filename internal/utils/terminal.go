package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsStderrTerminal returns true if stderr is a terminal. Progress output is
// only drawn then, so pipes and CI logs stay clean.
func IsStderrTerminal() bool {
	return IsTerminal(os.Stderr)
}
