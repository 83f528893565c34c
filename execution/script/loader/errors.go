package loader

import (
	"errors"
	"fmt"
)

var (
	ErrSchemeUnsupported  = errors.New("unsupported scheme")
	ErrScriptNotAvailable = errors.New("script not available")
	ErrInvalidEncoding    = errors.New("source is not valid UTF-8")
)

// IoError reports that the source of a file could not be read. It carries the
// path as the user supplied it and the underlying cause.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
