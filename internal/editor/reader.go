package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// LineReader reads one line of user input.
//
// prompt is printed before the line and def is pre-filled. ReadLine returns
// ErrInterrupted when the user aborts the read (ctrl-c, end of input).
type LineReader interface {
	ReadLine(ctx context.Context, prompt string, def DefaultValue) (string, error)
}

// NewReader returns a TerminalReader when in is an interactive terminal and
// plain is false, and a PlainReader otherwise. Both record entered lines in
// history.
func NewReader(in *os.File, out io.Writer, history *History, plain bool) LineReader {
	fd := in.Fd()
	if !plain && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return NewTerminalReader(in, out, history)
	}
	return NewPlainReader(in, out, history)
}

// PlainReader reads lines from a non-interactive stream.
//
// A plain stream cannot be pre-filled, so the default is printed in
// parentheses after the prompt and an empty line accepts it. As a
// consequence a field with a default cannot be set to the empty string
// from a PlainReader; use the TerminalReader to clear it.
type PlainReader struct {
	in      *bufio.Reader
	out     io.Writer
	history *History
}

// NewPlainReader creates a PlainReader. history may be nil.
func NewPlainReader(in io.Reader, out io.Writer, history *History) *PlainReader {
	return &PlainReader{
		in:      bufio.NewReader(in),
		out:     out,
		history: history,
	}
}

// ReadLine implements LineReader.
func (r *PlainReader) ReadLine(ctx context.Context, prompt string, def DefaultValue) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInterrupted
	}

	hint := def.Text()
	if hint != "" {
		fmt.Fprintf(r.out, "%s(%s) ", prompt, hint)
	} else {
		fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(r.out)
			return "", ErrInterrupted
		}
	}
	line = strings.TrimRight(line, "\r\n")

	if strings.TrimSpace(line) == "" && hint != "" {
		line = hint
	}
	r.history.Add(line)
	return line, nil
}
