// Package console prints human-readable status lines coloured by severity and
// reads answers to interactive prompts.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Severity int

const (
	Plain Severity = iota
	Info
	Success
	Warning
	Error
)

var palette = map[Severity]*color.Color{
	Info:    color.New(color.FgHiCyan),
	Success: color.New(color.FgHiGreen),
	Warning: color.New(color.FgHiYellow),
	Error:   color.New(color.FgHiRed),
}

// Format returns text wrapped in the colour of sev. Plain text and disabled
// colour output come back unchanged.
func Format(sev Severity, text string) string {
	c, ok := palette[sev]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// SetColor turns colour output off for every Console when enabled is false.
// It never turns colour on: fatih/color has already disabled it when stdout is
// not a terminal or NO_COLOR is set.
func SetColor(enabled bool) {
	if !enabled {
		color.NoColor = true
	}
}

type Console struct {
	out io.Writer
	in  *bufio.Reader
}

func New(out io.Writer, in io.Reader) *Console {
	return &Console{
		out: out,
		in:  bufio.NewReader(in),
	}
}

func (c *Console) Print(sev Severity, text string) {
	fmt.Fprintln(c.out, Format(sev, text))
}

func (c *Console) Printf(sev Severity, format string, args ...any) {
	c.Print(sev, fmt.Sprintf(format, args...))
}

type answer struct {
	text string
	err  error
}

// Ask writes question without a trailing newline and blocks until a line is
// read or ctx is done. The answer is trimmed and lower-cased. End of input
// counts as an empty answer.
func (c *Console) Ask(ctx context.Context, sev Severity, question string) (string, error) {
	fmt.Fprint(c.out, Format(sev, question))

	ch := make(chan answer, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		if err == io.EOF {
			err = nil
		}
		ch <- answer{text: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-ch:
		if a.err != nil {
			return "", fmt.Errorf("reading answer: %w", a.err)
		}
		return strings.ToLower(strings.TrimSpace(a.text)), nil
	}
}

// Confirm asks a yes/no question. An empty answer yields defaultYes.
func (c *Console) Confirm(ctx context.Context, sev Severity, question string, defaultYes bool) (bool, error) {
	a, err := c.Ask(ctx, sev, question)
	if err != nil {
		return false, err
	}
	switch a {
	case "y", "yes":
		return true, nil
	case "":
		return defaultYes, nil
	default:
		return false, nil
	}
}
