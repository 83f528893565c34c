package options

import (
	"log/slog"
	"os"
)

const (
	DefaultLang   = "lox"
	DefaultPrompt = "> "
	DefaultBanner = "Welcome to loxsh. Enter Ctrl+D or `:exit` to exit."
)

// DefaultConfig initializes a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		handler:      DefaultHandler(),
		lang:         DefaultLang,
		prompt:       DefaultPrompt,
		banner:       DefaultBanner,
		input:        os.Stdin,
		promptWriter: os.Stdout,
		diagWriter:   os.Stderr,
	}
}

// DefaultHandler returns the default logging handler. It logs warnings and
// above to stderr so the interactive session stays readable.
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
}

// WithDefaults applies default values to any config properties that are unset
func WithDefaults() Option {
	return func(c *Config) error {
		d := DefaultConfig()
		if c.handler == nil {
			c.handler = d.handler
		}
		if c.lang == "" {
			c.lang = d.lang
		}
		if c.input == nil {
			c.input = d.input
		}
		if c.promptWriter == nil {
			c.promptWriter = d.promptWriter
		}
		if c.diagWriter == nil {
			c.diagWriter = d.diagWriter
		}
		return nil
	}
}
