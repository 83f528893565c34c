package script

import "errors"

var ErrLoaderNil = errors.New("loader is nil")
