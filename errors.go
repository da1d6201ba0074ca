package strokefill

import "errors"

// Errors reported by the stroke-to-fill conversion. A malformed result
// would corrupt rendering silently, so invalid geometric input aborts
// the whole conversion instead of being patched over.
var (
	// ErrZeroLengthSegment is returned when a path contains two equal
	// consecutive points. A zero-length segment has no defined normal.
	ErrZeroLengthSegment = errors.New("strokefill: zero-length segment has no normal")

	// ErrUnsupportedPathOp is returned when the input path contains a
	// quadratic or cubic curve operation. Only flattened (line-only)
	// paths are accepted; flatten curves upstream with Flatten.
	ErrUnsupportedPathOp = errors.New("strokefill: only flattened paths are supported")
)

// errParallelLines reports a degenerate offset-line intersection at a
// join. The join builder recovers from it by falling back to a bevel.
var errParallelLines = errors.New("strokefill: offset lines are parallel")
