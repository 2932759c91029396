package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

func day(month time.Month, d int) types.Date {
	return types.NewDate(2024, month, d)
}

func TestDateRange_SingleDayExpansion(t *testing.T) {
	r, err := NewDateRange(day(time.December, 25), day(time.December, 25))
	require.NoError(t, err)

	days := r.Days()
	require.Len(t, days, 1)
	assert.True(t, days[0].Equal(r.Start))
	assert.True(t, r.IsSingleDay())
	assert.Equal(t, "2024-12-25", r.String())
}

func TestDateRange_ExpansionLengthAndBounds(t *testing.T) {
	tests := []struct {
		start, end types.Date
		count      int
	}{
		{day(time.December, 24), day(time.December, 26), 3},
		{day(time.February, 27), day(time.March, 2), 5},
		{types.NewDate(2024, time.December, 30), types.NewDate(2025, time.January, 2), 4},
	}

	for _, tt := range tests {
		r := DateRange{Start: tt.start, End: tt.end}
		days := r.Days()

		assert.Len(t, days, tt.count)
		assert.Equal(t, tt.count, r.DayCount())
		for _, d := range days {
			assert.True(t, r.Contains(d), "%s outside %s", d, r)
		}
		assert.True(t, days[0].Equal(tt.start))
		assert.True(t, days[len(days)-1].Equal(tt.end))
	}
}

func TestDateRange_String(t *testing.T) {
	r := DateRange{Start: day(time.December, 24), End: day(time.December, 26)}
	assert.Equal(t, "2024-12-24 – 2024-12-26", r.String())
}

func TestDateRange_Validate(t *testing.T) {
	_, err := NewDateRange(day(time.December, 26), day(time.December, 24))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange(types.Date{}, day(time.December, 24))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	long, err := NewDateRange(day(time.January, 1), types.NewDate(2026, time.June, 30))
	require.NoError(t, err)
	assert.Equal(t, 912, long.DayCount())
}

func TestDecodeDateRanges(t *testing.T) {
	raw := `[
		{"start":"2024-12-24T00:00:00.000Z","end":"2024-12-26T00:00:00.000Z"},
		{"start":"2025-01-01T05:00:00.000Z","end":"2025-01-01T05:00:00.000Z"}
	]`

	ranges, err := DecodeDateRanges(raw)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, "2024-12-24 – 2024-12-26", ranges[0].String())
	assert.Equal(t, "2025-01-01", ranges[1].String())
}

func TestDecodeDateRanges_FailSoft(t *testing.T) {
	ranges, err := DecodeDateRanges(`not json`)
	assert.ErrorIs(t, err, ErrMalformedConfig)
	assert.Empty(t, ranges)

	ranges, err = DecodeDateRanges("")
	assert.NoError(t, err)
	assert.Empty(t, ranges)

	ranges, err = DecodeDateRanges(`[{"start":"garbage","end":"2024-12-26"},{"start":"2024-12-26","end":"2024-12-24"},{"start":"2024-12-01","end":"2024-12-02"}]`)
	assert.ErrorIs(t, err, ErrMalformedConfig)
	require.Len(t, ranges, 1)
	assert.Equal(t, "2024-12-01 – 2024-12-02", ranges[0].String())
}

func TestEncodeDateRanges(t *testing.T) {
	raw, err := EncodeDateRanges([]DateRange{{Start: day(time.December, 24), End: day(time.December, 26)}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"start":"2024-12-24T00:00:00.000Z","end":"2024-12-26T00:00:00.000Z"}]`, raw)

	raw, err = EncodeDateRanges(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
}
