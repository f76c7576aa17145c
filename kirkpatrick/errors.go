package kirkpatrick

import "fmt"

// BoundingTriangleFailureError reports that preprocessing could not
// find a valid minimum bounding triangle for a region's outline, per
// spec §7. The multi-region coordinator (package region) catches this
// and skips the offending region.
type BoundingTriangleFailureError struct {
	Reason error
}

func (e *BoundingTriangleFailureError) Error() string {
	return fmt.Sprintf("kirkpatrick: bounding triangle build failed: %v", e.Reason)
}

func (e *BoundingTriangleFailureError) Unwrap() error {
	return e.Reason
}

// peelStuckError reports that no independent set could be extracted
// from the current frontier's vertex graph even though more than one
// triangle remains — an internal consistency failure of the peel loop.
type peelStuckError struct{}

func (peelStuckError) Error() string {
	return "kirkpatrick: peel loop stuck, no low-degree independent set available"
}
