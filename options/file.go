package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robbyt/loxsh/internal/helpers"
)

// Results stream targets accepted by the results setting.
const (
	ResultsDiag   = "diag"
	ResultsStdout = "stdout"
)

// FileConfig is the YAML config file. Pointer fields distinguish an absent
// key from an explicit empty string.
type FileConfig struct {
	Prompt   *string `yaml:"prompt"`
	Banner   *string `yaml:"banner"`
	Lang     string  `yaml:"lang"`
	LogLevel string  `yaml:"log_level"`
	Results  string  `yaml:"results"`
	DumpAST  bool    `yaml:"dump_ast"`
}

// LoadFile reads and checks a YAML config file. Unknown keys are rejected.
// An empty file yields an empty FileConfig.
func LoadFile(path string) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	return parseFile(raw)
}

func parseFile(raw []byte) (*FileConfig, error) {
	fc := &FileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	if _, err := fc.Level(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := ResultsWriter(fc.Results, io.Discard); err != nil {
		return nil, err
	}
	return fc, nil
}

// Level returns the configured log level, warn when unset.
func (f *FileConfig) Level() (slog.Level, error) {
	if f.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	return helpers.ParseLevel(f.LogLevel)
}

// Options converts the file settings into options. stdout is the stream used
// when results are set to "stdout". The log level is not an option: the
// caller builds the handler from Level.
func (f *FileConfig) Options(stdout io.Writer) []Option {
	var opts []Option
	if f.Prompt != nil {
		opts = append(opts, WithPrompt(*f.Prompt))
	}
	if f.Banner != nil {
		opts = append(opts, WithBanner(*f.Banner))
	}
	if f.Lang != "" {
		opts = append(opts, WithLang(f.Lang))
	}
	if f.DumpAST {
		opts = append(opts, WithDumpAST(true))
	}
	if w, err := ResultsWriter(f.Results, stdout); err == nil && w != nil {
		opts = append(opts, WithResultsWriter(w))
	}
	return opts
}

// ResultsWriter maps a results target to a writer. The diagnostic target
// (or an empty one) returns nil, meaning results share the diagnostic stream.
func ResultsWriter(target string, stdout io.Writer) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "", ResultsDiag:
		return nil, nil
	case ResultsStdout:
		return stdout, nil
	default:
		return nil, fmt.Errorf("%w: results must be %q or %q, got %q",
			ErrInvalidConfig, ResultsDiag, ResultsStdout, target)
	}
}
