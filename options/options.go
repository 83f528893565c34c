package options

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config holds all configuration for the driver and the interactive shell
type Config struct {
	// Logger for operational messages, never for user diagnostics
	handler slog.Handler
	// Registry name of the machine for interactive lines and unknown file extensions
	lang string
	// Interactive prompt, written before every read
	prompt string
	// Written once to the diagnostic stream when the shell starts
	banner string
	// Write the parsed tree before interpreting
	dumpAST bool

	input         io.Reader
	promptWriter  io.Writer
	diagWriter    io.Writer
	resultsWriter io.Writer
}

// Option is a function that modifies Config
type Option func(*Config) error

// New builds a Config from the defaults and the given options, then validates it.
func New(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithLogHandler sets the slog handler
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler == nil {
			return fmt.Errorf("%w: log handler cannot be nil", ErrInvalidConfig)
		}
		c.handler = handler
		return nil
	}
}

// WithLang selects the machine by registry name
func WithLang(name string) Option {
	return func(c *Config) error {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return fmt.Errorf("%w: language cannot be empty", ErrInvalidConfig)
		}
		c.lang = name
		return nil
	}
}

// WithPrompt sets the interactive prompt. An empty prompt is allowed.
func WithPrompt(prompt string) Option {
	return func(c *Config) error {
		c.prompt = prompt
		return nil
	}
}

// WithBanner sets the start-up banner. An empty banner disables it.
func WithBanner(banner string) Option {
	return func(c *Config) error {
		c.banner = banner
		return nil
	}
}

// WithDumpAST enables writing the parsed tree before interpretation
func WithDumpAST(enabled bool) Option {
	return func(c *Config) error {
		c.dumpAST = enabled
		return nil
	}
}

// WithInput sets the reader for interactive lines
func WithInput(r io.Reader) Option {
	return func(c *Config) error {
		if r == nil {
			return fmt.Errorf("%w: input cannot be nil", ErrInvalidConfig)
		}
		c.input = r
		return nil
	}
}

// WithPromptWriter sets where the prompt is written
func WithPromptWriter(w io.Writer) Option {
	return func(c *Config) error {
		if w == nil {
			return fmt.Errorf("%w: prompt writer cannot be nil", ErrInvalidConfig)
		}
		c.promptWriter = w
		return nil
	}
}

// WithDiagWriter sets the diagnostic stream
func WithDiagWriter(w io.Writer) Option {
	return func(c *Config) error {
		if w == nil {
			return fmt.Errorf("%w: diagnostic writer cannot be nil", ErrInvalidConfig)
		}
		c.diagWriter = w
		return nil
	}
}

// WithResultsWriter splits computed values onto their own stream. A nil
// writer sends them back to the diagnostic stream.
func WithResultsWriter(w io.Writer) Option {
	return func(c *Config) error {
		c.resultsWriter = w
		return nil
	}
}

// Validate checks that every required field is set
func (c *Config) Validate() error {
	var errs []error
	if c.handler == nil {
		errs = append(errs, errors.New("no log handler specified"))
	}
	if c.lang == "" {
		errs = append(errs, errors.New("no language specified"))
	}
	if c.input == nil {
		errs = append(errs, errors.New("no input specified"))
	}
	if c.promptWriter == nil {
		errs = append(errs, errors.New("no prompt writer specified"))
	}
	if c.diagWriter == nil {
		errs = append(errs, errors.New("no diagnostic writer specified"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// GetHandler returns the configured log handler
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// GetLang returns the configured machine name
func (c *Config) GetLang() string {
	return c.lang
}

// GetPrompt returns the interactive prompt
func (c *Config) GetPrompt() string {
	return c.prompt
}

// GetBanner returns the start-up banner
func (c *Config) GetBanner() string {
	return c.banner
}

// GetDumpAST reports whether parsed trees are dumped
func (c *Config) GetDumpAST() bool {
	return c.dumpAST
}

// GetInput returns the interactive input
func (c *Config) GetInput() io.Reader {
	return c.input
}

// GetPromptWriter returns the prompt stream
func (c *Config) GetPromptWriter() io.Writer {
	return c.promptWriter
}

// GetDiagWriter returns the diagnostic stream
func (c *Config) GetDiagWriter() io.Writer {
	return c.diagWriter
}

// GetResultsWriter returns the results stream, which is the diagnostic
// stream unless it was split.
func (c *Config) GetResultsWriter() io.Writer {
	if c.resultsWriter == nil {
		return c.diagWriter
	}
	return c.resultsWriter
}
