package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/cs-demo-processor/csdp/internal/errors"
	logger "github.com/cs-demo-processor/csdp/internal/logging"
	"github.com/cs-demo-processor/csdp/internal/ui"
	"github.com/cs-demo-processor/csdp/internal/utils"
)

// LinePrompter prompts on out and reads newline-terminated answers from in.
type LinePrompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	log    logger.Logger

	warnedEcho bool
}

// NewLinePrompter creates a prompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer, log logger.Logger) *LinePrompter {
	return &LinePrompter{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
		log:    log,
	}
}

// readLine returns the next line without its line terminator.
// A final line without a newline is still returned.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", kerrors.ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *LinePrompter) Pause(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintln(p.out, message)
	_, err := p.readLine()
	return err
}

func (p *LinePrompter) Line(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, label+":\n> ")
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) Secret(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, label+": ")

	if f, ok := p.in.(*os.File); ok && utils.IsTerminal(f) {
		secret, err := utils.ReadPassword(f)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return secret, nil
	}

	if !p.warnedEcho {
		p.log.Warnf("stdin is not a terminal; password input will be echoed")
		p.warnedEcho = true
	}
	return p.readLine()
}

func (p *LinePrompter) Path(ctx context.Context, label string, validate func(string) error) (string, error) {
	for {
		path, err := p.Line(ctx, label)
		if err != nil {
			return "", err
		}
		if validate == nil {
			return path, nil
		}
		if err := validate(path); err != nil {
			p.log.Debugf("Rejected path %q: %v", path, err)
			fmt.Fprintf(p.out, "\n%s %s\n\n", ui.Error.Sprint("ERROR:"), retryMessage(err))
			continue
		}
		return path, nil
	}
}
