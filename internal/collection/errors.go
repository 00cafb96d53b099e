package collection

import "errors"

// ErrNotFound is returned by Update when the key is missing.
var ErrNotFound = errors.New("not found")
