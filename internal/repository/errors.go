package repository

import "errors"

// ErrNotFound is returned by every repository operation that addresses an
// id or slug with no matching entity. This includes Delete and
// IncrementViewCount: missing ids are reported, never silently ignored.
var ErrNotFound = errors.New("not found")
