package common

import "errors"

// ErrFillOverflow signals an internal invariant violation: the matcher
// attempted to fill an order beyond its remaining quantity. This is a bug
// in the matcher, not a user error, and is the only error the engine ever
// surfaces to a caller.
var ErrFillOverflow = errors.New("fill exceeds remaining quantity")
