package utils

import (
	"strings"

	"github.com/PolarWolf314/shush/internal/ui"
)

// FormatNames formats a slice of variable names into an indented list, one
// name per line. Each line starts with a newline so the result can follow a
// label such as "Decrypted:".
func FormatNames(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString("\n    - ")
		b.WriteString(ui.Highlight.Sprint(name))
	}
	return b.String()
}
