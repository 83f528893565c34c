package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/robbyt/loxsh/execution/script/loader"
	"github.com/robbyt/loxsh/internal/helpers"
)

const checksumLength = 12

// ExecutableUnit is one loaded unit of source text: an interactive line, an
// `:eval` target, or the script given on the command line. It is owned by a
// single pipeline run and discarded afterwards.
type ExecutableUnit struct {
	// ID is derived from a hash of the source text.
	ID string

	// CreatedAt records when the source was loaded.
	CreatedAt time.Time

	// ScriptLoader is where the source text came from (file, string, reader).
	ScriptLoader loader.Loader

	// Source is the complete source text of the unit.
	Source string

	logger *slog.Logger
}

// NewExecutableUnit reads the whole source from scriptLoader. Read failures and
// invalid UTF-8 are returned as *loader.IoError.
func NewExecutableUnit(handler slog.Handler, scriptLoader loader.Loader) (*ExecutableUnit, error) {
	_, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if scriptLoader == nil {
		return nil, ErrLoaderNil
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, wrapIoError(scriptLoader, err)
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			logger.Warn("failed to close reader", "error", cerr)
		}
	}()

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, wrapIoError(scriptLoader, err)
	}
	if !utf8.Valid(body) {
		return nil, wrapIoError(scriptLoader, loader.ErrInvalidEncoding)
	}

	source := string(body)
	id := helpers.ShortSHA256(source, checksumLength)

	return &ExecutableUnit{
		ID:           id,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Source:       source,
		logger:       logger.With("ID", id),
	}, nil
}

// wrapIoError makes sure every read failure carries the path of its source.
func wrapIoError(l loader.Loader, err error) error {
	var ioErr *loader.IoError
	if errors.As(err, &ioErr) {
		return err
	}
	path := ""
	switch src := l.(type) {
	case *loader.FromDisk:
		path = src.Path()
	case *loader.FromString:
		path = loader.InlineSourceName
	default:
		if u := l.GetSourceURL(); u != nil {
			path = u.String()
		}
	}
	return &loader.IoError{Path: path, Err: err}
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.ScriptLoader)
}

// GetID returns the content-derived identifier of this unit.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetSource returns the source text.
func (exe *ExecutableUnit) GetSource() string {
	return exe.Source
}

func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetLoader returns the loader used to load the script.
func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}

// GetSourceURL returns the origin of the source, or nil when the loader has none.
func (exe *ExecutableUnit) GetSourceURL() *url.URL {
	if exe.ScriptLoader == nil {
		return nil
	}
	return exe.ScriptLoader.GetSourceURL()
}

// Logger returns the unit's logger, tagged with its ID.
func (exe *ExecutableUnit) Logger() *slog.Logger {
	if exe.logger == nil {
		_, exe.logger = helpers.SetupLogger(nil, "script", "ExecutableUnit")
	}
	return exe.logger
}
