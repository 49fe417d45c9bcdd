// Package utils provides shared utility functions for the shush application.
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//
// # I/O Utilities
//
//   - ReadInput: reads all data from standard input
//   - ArgOrStdin: takes a positional argument or falls back to stdin
//
// # Terminal Utilities
//
//   - IsTerminal, IsStderrTerminal: terminal detection for progress output
//
// # String Utilities
//
//   - FormatNames: formats variable names for human-readable output
package utils
