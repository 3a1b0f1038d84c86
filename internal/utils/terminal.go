package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether v is an *os.File connected to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadPassword reads a line from the terminal f without echoing it.
func ReadPassword(f *os.File) (string, error) {
	password, err := term.ReadPassword(int(f.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// ClearScreen clears the terminal behind w using ANSI escape sequences.
// Nothing is written when w is not a terminal.
func ClearScreen(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !IsTerminal(f) {
		return
	}
	// Move cursor to top-left, then clear.
	fmt.Fprint(f, "\033[H\033[2J")
}
