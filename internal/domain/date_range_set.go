package domain

import "fmt"

// DateRangeSet is the ordered collection of blocked ranges of a shop.
// A range is identified only by its position; insertion order is display order.
// Overlapping entries are allowed and are never merged.
//
// Removal is two-phase: RequestRemove records a candidate without touching the
// collection, ConfirmRemove deletes it, CancelRemove forgets it.
type DateRangeSet struct {
	ranges         []DateRange
	pendingRemoval *int
}

// NewDateRangeSet copies ranges into a new set
func NewDateRangeSet(ranges []DateRange) *DateRangeSet {
	copied := make([]DateRange, len(ranges))
	copy(copied, ranges)
	return &DateRangeSet{ranges: copied}
}

// Ranges returns a copy of the current collection
func (s *DateRangeSet) Ranges() []DateRange {
	copied := make([]DateRange, len(s.ranges))
	copy(copied, s.ranges)
	return copied
}

func (s *DateRangeSet) Len() int {
	return len(s.ranges)
}

// At returns the range at index
func (s *DateRangeSet) At(index int) (DateRange, error) {
	if err := s.checkIndex(index); err != nil {
		return DateRange{}, err
	}
	return s.ranges[index], nil
}

// Add appends a validated range
func (s *DateRangeSet) Add(r DateRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.ranges = append(s.ranges, r)
	return nil
}

// Edit replaces the range at index in place
func (s *DateRangeSet) Edit(index int, r DateRange) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	s.ranges[index] = r
	return nil
}

// RequestRemove records index as the removal candidate, replacing any previous one
func (s *DateRangeSet) RequestRemove(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.pendingRemoval = &index
	return nil
}

// PendingRemoval returns the candidate index, if a removal was requested
func (s *DateRangeSet) PendingRemoval() (int, bool) {
	if s.pendingRemoval == nil {
		return 0, false
	}
	return *s.pendingRemoval, true
}

// ConfirmRemove deletes the candidate and returns the removed range
func (s *DateRangeSet) ConfirmRemove() (DateRange, error) {
	index, ok := s.PendingRemoval()
	if !ok {
		return DateRange{}, ErrNoPendingRemoval
	}
	s.pendingRemoval = nil

	if err := s.checkIndex(index); err != nil {
		return DateRange{}, err
	}

	removed := s.ranges[index]
	s.ranges = append(s.ranges[:index:index], s.ranges[index+1:]...)
	return removed, nil
}

// CancelRemove forgets the candidate. Returns false if none was pending.
func (s *DateRangeSet) CancelRemove() bool {
	_, ok := s.PendingRemoval()
	s.pendingRemoval = nil
	return ok
}

func (s *DateRangeSet) checkIndex(index int) error {
	if index < 0 || index >= len(s.ranges) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(s.ranges))
	}
	return nil
}
