package loader

import (
	"io"
	"net/url"
)

// Loader produces the source text of one program unit, and names where it came from.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
