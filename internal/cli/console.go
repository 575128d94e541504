package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/dpda/internal/logging"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/cockroachdb/errors"
	"github.com/muesli/termenv"
)

const (
	promptHeader      = "Enter the number of states for this DPDA, then whitespace, then a string containing the alphabet:"
	promptTransitions = "Enter transitions for this machine, or enter -1 to indicate you are done:"
	promptFinals      = "Enter the final states, separated by whitespace, and ending with -1 to indicate you are done (non-integers are ignored):"
	promptInput       = "Current status %s, Enter input: "

	// endOfInput ends the run loop.
	endOfInput = '.'
)

// Console is the line-oriented front-end of the engine. It reads a machine
// description (header, transitions, final states) and then feeds input
// characters one per line, printing the status as it goes.
type Console struct {
	in     *bufio.Scanner
	out    *termenv.Output
	errOut io.Writer

	prompts    bool
	strict     bool
	logger     *slog.Logger
	automatonO []automaton.Option
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithPrompts prints the interactive prompts. Off by default so scripted
// input produces only statuses and verdicts.
func WithPrompts(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.prompts = enabled
	}
}

// WithStrict makes Build fail on the first malformed or rejected line
// instead of reporting it and moving on.
func WithStrict(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.strict = enabled
	}
}

// WithProfile sets the color profile used for verdicts. Defaults to Ascii.
func WithProfile(p termenv.Profile) ConsoleOption {
	return func(c *Console) {
		c.out = termenv.NewOutput(c.out.Writer(), termenv.WithProfile(p))
	}
}

// WithConsoleLogger sets the logger.
func WithConsoleLogger(logger *slog.Logger) ConsoleOption {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithAutomatonOptions forwards options to the automaton built by Build.
func WithAutomatonOptions(opts ...automaton.Option) ConsoleOption {
	return func(c *Console) {
		c.automatonO = append(c.automatonO, opts...)
	}
}

// NewConsole creates a console reading r and writing to out and errOut.
func NewConsole(r io.Reader, out, errOut io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		in:     bufio.NewScanner(r),
		out:    termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii)),
		errOut: errOut,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) prompt(format string, args ...any) {
	if c.prompts {
		fmt.Fprintf(c.out, format, args...)
	}
}

func (c *Console) report(err error) {
	fmt.Fprintf(c.errOut, "Error: %v\n", err)
}

func (c *Console) next() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// Build reads a machine description and returns the automaton it defines.
// In lenient mode malformed lines are reported and skipped; an unusable
// header or a missing final-state section is always an error.
func (c *Console) Build() (*automaton.Automaton, error) {
	var a *automaton.Automaton
	for a == nil {
		c.prompt("%s\n", promptHeader)
		line, ok := c.next()
		if !ok {
			return nil, errors.Wrap(domain.ErrInvalidDefinition, "missing header line")
		}
		size, alphabet, err := ParseHeader(line)
		if err == nil {
			a, err = automaton.New(size, alphabet, c.automatonO...)
		}
		if err != nil {
			if c.strict {
				return nil, errors.Wrap(err, "header")
			}
			c.report(err)
		}
	}

	lineNo := 1
	for {
		c.prompt("%s\n", promptTransitions)
		line, ok := c.next()
		if !ok {
			return nil, errors.Wrap(domain.ErrInvalidDefinition, "transition section is not terminated")
		}
		lineNo++
		if IsSentinel(line) {
			break
		}

		tr, err := ParseTransition(line)
		if err == nil {
			err = a.AddTransition(tr.Source, tr.Target, tr.Consumed, tr.Pop, tr.Push)
		}
		if err != nil {
			if c.strict {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			c.report(err)
		}
	}

	c.prompt("%s\n", promptFinals)
	for {
		line, ok := c.next()
		if !ok {
			return nil, errors.Wrap(domain.ErrInvalidDefinition, "final state section is not terminated")
		}
		values, done := ParseFinalStates(line)
		a.AddFinalStates(values...)
		if done {
			break
		}
	}

	c.logger.Info("automaton built",
		"states", a.Size(),
		"alphabet", a.Alphabet(),
		"transitions", a.TransitionCount(),
		"finals", a.FinalStates())
	return a, nil
}

// Run feeds the first character of each non-blank line to a until a line
// starting with "." is read, the input ends, ctx is cancelled or a becomes
// trapped. It then prints and returns the verdict and resets a.
func (c *Console) Run(ctx context.Context, a *automaton.Automaton) domain.Verdict {
	if c.prompts {
		fmt.Fprintln(c.out)
	}

	for ctx.Err() == nil {
		c.prompt(promptInput, a.CurrentStatus())
		line, ok := c.next()
		if !ok {
			break
		}
		token := strings.TrimSpace(line)
		if token == "" {
			continue
		}

		r, _ := utf8.DecodeRuneInString(token)
		if r == endOfInput {
			break
		}
		if err := a.ReadCharacter(r); err != nil {
			fmt.Fprintf(c.errOut, "Error: %v\n\n", err)
			continue
		}
		if a.InTrappedState() {
			break
		}
	}

	verdict := a.FinalStatus()
	c.printVerdict(verdict)
	a.Reset()
	return verdict
}

func (c *Console) printVerdict(v domain.Verdict) {
	if c.prompts {
		fmt.Fprintln(c.out)
	}
	color := "#22c55e"
	if v != domain.VerdictAccepted {
		color = "#ef4444"
	}
	fmt.Fprintln(c.out, c.out.String(string(v)).Foreground(c.out.Color(color)).Bold())
}

// Check runs every input from the initial configuration and writes one
// tab-separated line per input: the input, the final status and the verdict.
// An input with a character outside the alphabet is reported with the error
// in place of the status.
func Check(a *automaton.Automaton, inputs []string, w io.Writer) (accepted int) {
	for _, input := range inputs {
		a.Reset()
		if _, err := a.ReadString(input); err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t%s\n", input, err, domain.VerdictRejected)
			continue
		}
		verdict := a.FinalStatus()
		if verdict == domain.VerdictAccepted {
			accepted++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", input, a.CurrentStatus(), verdict)
	}
	a.Reset()
	return accepted
}

// Build reads a machine description from r without prompting.
func Build(r io.Reader, errOut io.Writer, opts ...ConsoleOption) (*automaton.Automaton, error) {
	return NewConsole(r, io.Discard, errOut, opts...).Build()
}
