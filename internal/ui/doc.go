// Package ui provides semantic text formatting for CLI messages on stderr.
//
// When colors are available, content is colorized. When NO_COLOR is set or
// the terminal doesn't support colors, text-based decorations (backticks,
// quotes) are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("shush exec -- ./server") // Commands
//	ui.Flag.Sprint("--no_padding")           // Flags
//	ui.Success.Sprint("✓")                   // Success indicators
//	ui.Error.Sprint("Error:")                // Error indicators
//	ui.Highlight.Sprint("DB_PASSWORD")       // Variable names, key references
//
// Formatters are never applied to cipher text or plaintext on stdout.
package ui
