package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/loxsh/internal/helpers"
)

// InlineSourceName names in-memory source in user-facing errors.
const InlineSourceName = "<input>"

// FromString wraps source text that is already in memory, such as one
// interactive line. Empty content is allowed: an empty program is still a program.
type FromString struct {
	content   string
	sourceURL *url.URL
}

func NewFromString(content string) (*FromString, error) {
	u, err := url.Parse("string://inline/" + helpers.ShortSHA256(content, 8))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
