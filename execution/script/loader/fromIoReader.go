package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/loxsh/internal/helpers"
)

// FromIoReader implements the Loader interface for content from an io.Reader,
// such as a program piped on stdin.
// The entire reader content is read up front to allow multiple GetReader calls.
type FromIoReader struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromIoReader drains reader and names the result reader://<sourceName>/<checksum>.
func NewFromIoReader(reader io.Reader, sourceName string) (*FromIoReader, error) {
	if sourceName == "" {
		sourceName = "unnamed"
	}
	if reader == nil {
		return nil, &IoError{Path: sourceName, Err: fmt.Errorf("%w: reader is nil", ErrScriptNotAvailable)}
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, &IoError{Path: sourceName, Err: err}
	}

	u, err := url.Parse("reader://" + sourceName + "/" + helpers.ShortSHA256(string(content), 8))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromIoReader{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromIoReader) String() string {
	return fmt.Sprintf(
		"loader.FromIoReader{Bytes: %d, Source: %s}",
		len(l.content),
		l.sourceURL.String(),
	)
}

// GetReader returns a new reader for the stored content.
func (l *FromIoReader) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromIoReader) GetSourceURL() *url.URL {
	return l.sourceURL
}
