package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// DateRange is an inclusive interval of blocked calendar dates.
// Start == End denotes a single blocked day.
type DateRange struct {
	Start types.Date
	End   types.Date
}

// NewDateRange builds a validated range
func NewDateRange(start, end types.Date) (DateRange, error) {
	r := DateRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate checks the invariants enforced at the add/edit boundary.
// Length is not limited.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidDateRange)
	}
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange, r.Start, r.End)
	}
	return nil
}

// IsSingleDay returns true if the range blocks exactly one day
func (r DateRange) IsSingleDay() bool {
	return r.Start.Equal(r.End)
}

// DayCount inclusive number of days in the range
func (r DateRange) DayCount() int {
	if r.Start.After(r.End) {
		return 0
	}
	return r.Start.DaysUntil(r.End) + 1
}

// Contains reports whether d lies within [Start, End]
func (r DateRange) Contains(d types.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days expands the range day by day
func (r DateRange) Days() []types.Date {
	days := make([]types.Date, 0, r.DayCount())
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// String renders a single date for one-day ranges and "start – end" otherwise
func (r DateRange) String() string {
	if r.IsSingleDay() {
		return r.Start.String()
	}
	return r.Start.String() + " – " + r.End.String()
}

// storedDateRange is the persisted shape under the dates key
type storedDateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DecodeDateRanges parses the stored dates blob.
// An empty or malformed blob yields no ranges and an error the caller may log.
// Entries whose endpoints cannot be parsed, or whose start is after the end,
// are dropped and reported through the same error.
func DecodeDateRanges(raw string) ([]DateRange, error) {
	if strings.TrimSpace(raw) == "" {
		return []DateRange{}, nil
	}

	var stored []storedDateRange
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return []DateRange{}, fmt.Errorf("%w: dates: %v", ErrMalformedConfig, err)
	}

	ranges := make([]DateRange, 0, len(stored))
	skipped := 0
	for _, item := range stored {
		start, errStart := types.ParseInstant(item.Start)
		end, errEnd := types.ParseInstant(item.End)
		if errStart != nil || errEnd != nil || start.After(end) {
			skipped++
			continue
		}
		ranges = append(ranges, DateRange{Start: start, End: end})
	}

	if skipped > 0 {
		return ranges, fmt.Errorf("%w: dates: skipped %d invalid entries", ErrMalformedConfig, skipped)
	}
	return ranges, nil
}

// EncodeDateRanges serializes the whole collection, endpoints as ISO-8601 instants
func EncodeDateRanges(ranges []DateRange) (string, error) {
	stored := make([]storedDateRange, len(ranges))
	for i, r := range ranges {
		stored[i] = storedDateRange{
			Start: r.Start.Instant(),
			End:   r.End.Instant(),
		}
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
