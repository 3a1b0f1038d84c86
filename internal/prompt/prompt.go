package prompt

import (
	"context"
	"strings"
	"unicode"
)

// Prompter asks the operator for values.
type Prompter interface {
	// Pause shows message and waits for the operator to continue.
	Pause(ctx context.Context, message string) error

	// Line asks for a value and returns it with surrounding whitespace removed.
	Line(ctx context.Context, label string) (string, error)

	// Secret asks for a value without echoing it. The value is returned verbatim.
	Secret(ctx context.Context, label string) (string, error)

	// Path asks for a path until validate accepts the trimmed answer.
	// A nil validate accepts any answer.
	Path(ctx context.Context, label string, validate func(string) error) (string, error)
}

// retryMessage renders a validation failure as shown before re-prompting.
func retryMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return "Invalid value. Please try again."
	}
	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	return strings.TrimSuffix(string(runes), ".") + ". Please try again."
}
