package prompt

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	kerrors "github.com/cs-demo-processor/csdp/internal/errors"
	"github.com/cs-demo-processor/csdp/internal/utils"
)

// FormPrompter asks each question as a single-field huh form.
type FormPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// NewFormPrompter creates a form prompter. In accessible mode huh falls back
// to plain line prompts that work with screen readers.
//
// Both modes need in to be a terminal. Every question is a separate form
// that reads ahead on in, and huh reads accessible passwords from the
// terminal directly, so piped answers would be lost.
func NewFormPrompter(in io.Reader, out io.Writer, accessible bool) *FormPrompter {
	return &FormPrompter{in: in, out: out, accessible: accessible}
}

func (p *FormPrompter) run(ctx context.Context, field huh.Field) error {
	if !utils.IsTerminal(p.in) {
		return kerrors.ErrNotTerminal
	}
	err := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.accessible).
		WithInput(p.in).
		WithOutput(p.out).
		RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return kerrors.ErrAborted
	}
	return err
}

func (p *FormPrompter) Pause(ctx context.Context, message string) error {
	return p.run(ctx, huh.NewNote().
		Title(message).
		Next(true).
		NextLabel("Continue"))
}

func (p *FormPrompter) Line(ctx context.Context, label string) (string, error) {
	var value string
	if err := p.run(ctx, huh.NewInput().Title(label).Value(&value)); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *FormPrompter) Secret(ctx context.Context, label string) (string, error) {
	var value string
	input := huh.NewInput().
		Title(label).
		EchoMode(huh.EchoModePassword).
		Value(&value)
	if err := p.run(ctx, input); err != nil {
		return "", err
	}
	return value, nil
}

func (p *FormPrompter) Path(ctx context.Context, label string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().Title(label).Value(&value)
	if validate != nil {
		input = input.Validate(func(s string) error {
			if err := validate(strings.TrimSpace(s)); err != nil {
				return errors.New(retryMessage(err))
			}
			return nil
		})
	}
	if err := p.run(ctx, input); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
