package dct

import "errors"

// ErrOutOfMemory is returned when a scratch reservation exceeds the
// allocator budget. The caller's vector is never modified on this path.
var ErrOutOfMemory = errors.New("dct: out of memory")
