package gla

import "errors"

// Error kinds. Every error returned by this package wraps exactly one
// of these sentinels; match with errors.Is and branch on kind.
var (
	// ErrInvalidArgument reports a caller contract violation: a
	// non-positive stride, a bad component count, a negative offset,
	// an out-of-range slot index, an incompatible type/interpretation
	// pair, or (with Config.StrictLayout) overlapping or overflowing
	// byte ranges. Retrying the same call cannot succeed.
	ErrInvalidArgument = errors.New("gla: invalid argument")

	// ErrDriver reports that the driver or hardware could not satisfy
	// a request: the attribute-limit query failed, the descriptor list
	// exceeds the hardware limit, or an issued call was rejected.
	// Callers may recover by requesting fewer attributes, not by
	// retrying unchanged.
	ErrDriver = errors.New("gla: driver error")
)
