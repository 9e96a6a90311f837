package types

import "errors"

// ErrInvalidArgument is returned for unknown rule identifiers and for
// malformed triangles, point tables or vertex tables. It is never retried.
var ErrInvalidArgument = errors.New("invalid argument")
