package dpda

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/dpda/internal/cli"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/cockroachdb/errors"
)

// Version is the release of this module. Overridden at link time with
// -ldflags "-X github.com/aretw0/dpda.Version=...".
var Version = "0.4.0"

type loadConfig struct {
	logger    *slog.Logger
	lenient   io.Writer
	automaton []automaton.Option
}

// Option configures Parse and Load.
type Option func(*loadConfig)

// WithLogger sets the logger used while building and by the automaton.
func WithLogger(logger *slog.Logger) Option {
	return func(c *loadConfig) {
		c.logger = logger
		c.automaton = append(c.automaton, automaton.WithLogger(logger))
	}
}

// WithAutomatonOptions forwards options to automaton.New.
func WithAutomatonOptions(opts ...automaton.Option) Option {
	return func(c *loadConfig) {
		c.automaton = append(c.automaton, opts...)
	}
}

// WithLenient reports malformed or rejected lines to w and skips them
// instead of failing.
func WithLenient(w io.Writer) Option {
	return func(c *loadConfig) {
		c.lenient = w
	}
}

// Parse reads a machine description from r.
func Parse(r io.Reader, opts ...Option) (*automaton.Automaton, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	errOut := cfg.lenient
	consoleOpts := []cli.ConsoleOption{
		cli.WithStrict(errOut == nil),
		cli.WithAutomatonOptions(cfg.automaton...),
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.logger != nil {
		consoleOpts = append(consoleOpts, cli.WithConsoleLogger(cfg.logger))
	}
	return cli.Build(r, errOut, consoleOpts...)
}

// Load reads a machine description from the file at path, or from stdin
// when path is "-".
func Load(path string, opts ...Option) (*automaton.Automaton, error) {
	if path == "-" {
		return Parse(os.Stdin, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open definition %s", path)
	}
	defer f.Close()

	a, err := Parse(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "definition %s", path)
	}
	return a, nil
}
