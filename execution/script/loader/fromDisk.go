package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FromDisk loads a script from the local filesystem. Relative paths are
// resolved against the current working directory.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

func NewFromDisk(path string) (*FromDisk, error) {
	original := path
	path = strings.TrimPrefix(strings.TrimSpace(path), "file://")

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, &IoError{Path: original, Err: fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)}
	}

	if path == "" || path == "." || path == "/" {
		return nil, &IoError{Path: original, Err: fmt.Errorf("%w: path is empty or invalid", ErrScriptNotAvailable)}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &IoError{Path: original, Err: err}
	}

	return &FromDisk{
		path:      original,
		sourceURL: &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)},
	}, nil
}

func (l *FromDisk) String() string {
	return fmt.Sprintf("loader.FromDisk{Path: %s}", l.sourceURL.Path)
}

// Path returns the path as it was given to NewFromDisk.
func (l *FromDisk) Path() string {
	return l.path
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	f, err := os.Open(filepath.FromSlash(l.sourceURL.Path))
	if err != nil {
		return nil, &IoError{Path: l.path, Err: err}
	}
	return f, nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
