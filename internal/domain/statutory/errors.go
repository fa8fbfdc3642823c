package statutory

import "errors"

var (
	// ErrSlabGap means state-specific slabs were supplied but none covers
	// the given salary. Slab schedules must partition [0, inf); a gap is
	// a configuration defect, not a fallback case.
	ErrSlabGap = errors.New("professional tax slabs do not cover the given salary")
)
