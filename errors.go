package audioprofile

import "errors"

// ErrBadValue reports that no configuration satisfying the request exists in the given capability set.
var ErrBadValue = errors.New("bad value")
