package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/term"
)

var (
	headingColor = color.New(color.Bold, color.FgCyan)
	noticeColor  = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// Console is the line based terminal the operator interacts with
type Console struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// New creates a Console reading operator input from in and writing to out
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Writer returns the output stream, used for sweep progress lines
func (c *Console) Writer() io.Writer {
	return c.out
}

// Ask prints the prompt and returns the trimmed answer. io.EOF is returned
// once the input is closed and nothing more was typed.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", io.EOF
		}
		return "", goerr.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}

// AskSecret is Ask without echo when the input is a terminal
func (c *Console) AskSecret(ctx context.Context, prompt string) (string, error) {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.Ask(ctx, prompt)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, prompt)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(c.out)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read secret")
	}
	return strings.TrimSpace(string(secret)), nil
}

// Confirm asks a question that only an explicit "yes" accepts
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := c.Ask(ctx, question+" (yes/no): ")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

// Heading prints a bold section title
func (c *Console) Heading(format string, args ...any) {
	headingColor.Fprintf(c.out, format+"\n", args...)
}

// Notice prints an informational line
func (c *Console) Notice(format string, args ...any) {
	noticeColor.Fprintf(c.out, format+"\n", args...)
}

// Error prints a line reporting a failure
func (c *Console) Error(format string, args ...any) {
	errorColor.Fprintf(c.out, format+"\n", args...)
}

// Success prints a line reporting a finished operation
func (c *Console) Success(format string, args ...any) {
	successColor.Fprintf(c.out, format+"\n", args...)
}

// Println prints a plain line
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}
