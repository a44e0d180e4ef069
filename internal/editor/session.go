package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

// Status is the outcome of a session.
type Status int

const (
	// StatusFinished means every field was answered.
	StatusFinished Status = iota

	// StatusInterrupted means the user aborted the session.
	StatusInterrupted
)

func (s Status) String() string {
	if s == StatusInterrupted {
		return "interrupted"
	}
	return "finished"
}

// Output is the result of Session.Run. Record is only meaningful when
// Status is StatusFinished.
type Output[O any] struct {
	Status Status
	Record O
}

// Interrupted reports whether the user aborted the session.
func (o Output[O]) Interrupted() bool {
	return o.Status == StatusInterrupted
}

// Commands are the literal tokens recognised on any prompt.
type Commands struct {
	Back string
	Quit string
}

// DefaultCommands returns the ":b" and ":q" commands.
func DefaultCommands() Commands {
	return Commands{Back: ":b", Quit: ":q"}
}

// Option configures a Session.
type Option func(*options)

type options struct {
	commands Commands
	out      io.Writer
	logger   *slog.Logger
}

// WithCommands overrides the back and quit tokens. Empty tokens keep the
// defaults.
func WithCommands(c Commands) Option {
	return func(o *options) {
		if strings.TrimSpace(c.Back) != "" {
			o.commands.Back = strings.TrimSpace(c.Back)
		}
		if strings.TrimSpace(c.Quit) != "" {
			o.commands.Quit = strings.TrimSpace(c.Quit)
		}
	}
}

// WithOutput sets where rejected answers are reported. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Session drives a Sequence and an OutputBuilder with a LineReader.
type Session[K Prompter, O any] struct {
	seq     *Sequence[K]
	builder OutputBuilder[K, O]
	reader  LineReader
	opts    options
}

// NewSession creates a session asking for the fields in order. Prompts are
// pre-filled from builder.Current, so a field answered earlier in the
// session is offered again when the user goes back to it.
func NewSession[K Prompter, O any](order []K, builder OutputBuilder[K, O], reader LineReader, opts ...Option) *Session[K, O] {
	o := options{
		commands: DefaultCommands(),
		out:      os.Stdout,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session[K, O]{
		seq:     NewSequence[K](order, builder),
		builder: builder,
		reader:  reader,
		opts:    o,
	}
}

// Sequence exposes the session's cursor.
func (s *Session[K, O]) Sequence() *Sequence[K] {
	return s.seq
}

// Run asks for fields until the session is finished or interrupted.
//
// Interruption is a normal outcome and is reported through Output, not as an
// error. Cancelling ctx interrupts the session before the next read; a read
// already in progress is not pre-empted. Errors are returned for reader
// failures and for a builder that cannot assemble after every field was
// visited (wrapping ErrIncomplete).
func (s *Session[K, O]) Run(ctx context.Context) (Output[O], error) {
	for {
		if ctx.Err() != nil {
			s.seq.Interrupt()
		}

		in := s.seq.Input()
		switch in.Kind {
		case InputInterrupted:
			s.opts.logger.Debug("session interrupted")
			return Output[O]{Status: StatusInterrupted}, nil

		case InputFinished:
			record, err := s.builder.Build()
			if err != nil {
				s.opts.logger.Error("build after finished session", "error", err)
				return Output[O]{}, fmt.Errorf("%w: %w", ErrIncomplete, err)
			}
			return Output[O]{Status: StatusFinished, Record: record}, nil

		case InputRead:
			if err := s.step(ctx, in); err != nil {
				return Output[O]{}, err
			}
		}
	}
}

// step performs one read for in.Key and applies the resulting transition.
func (s *Session[K, O]) step(ctx context.Context, in StateInput[K]) error {
	label := in.Key.Prompt()
	if in.Problem != nil {
		fmt.Fprintln(s.opts.out, problemStyle.Render(in.Problem.Error()))
	}

	line, err := s.reader.ReadLine(ctx, fmt.Sprintf("[%s] >>> ", label), in.Default)
	if err != nil {
		if errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled) {
			s.seq.Interrupt()
			return nil
		}
		return fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}

	value := strings.TrimSpace(line)
	switch value {
	case s.opts.commands.Back:
		s.opts.logger.Debug("back", "field", label)
		s.seq.Prev()
	case s.opts.commands.Quit:
		s.seq.Interrupt()
	default:
		if err := s.builder.SetValue(in.Key, value); err != nil {
			s.opts.logger.Debug("answer rejected", "field", label, "error", err)
			s.seq.Reject(err)
			return nil
		}
		s.seq.Next()
	}
	return nil
}
