package status

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal. The indicator
// writes cursor control sequences and must stay off pipes and log files.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
