package idspace

import (
	"fmt"

	"github.com/hupe1980/unbox"
)

// Space is the half-open index range [Start, Limit) of one value category.
type Space struct {
	Category unbox.Category
	Start    int
	Limit    int
}

// Check fails with unbox.ErrIndexOutOfRange when index falls outside the
// space.
func (s Space) Check(index int) error {
	if index < s.Start || index >= s.Limit {
		return fmt.Errorf("%w: %s index %d not in [%d, %d)", unbox.ErrIndexOutOfRange, s.Category, index, s.Start, s.Limit)
	}
	return nil
}

// CheckSpan validates width adjacent indices starting at index. Wide values
// that straddle two slots validate their whole span before any word is
// written.
func (s Space) CheckSpan(index, width int) error {
	for i := 0; i < width; i++ {
		if err := s.Check(index + i); err != nil {
			return err
		}
	}
	return nil
}
