package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

func TestBlockedWeekdaySet_ToggleTwiceRestoresMembership(t *testing.T) {
	for _, day := range AllWeekdays {
		t.Run(string(day), func(t *testing.T) {
			set := NewBlockedWeekdaySet(Monday, Friday)
			before := set.Contains(day)

			set.Toggle(day)
			assert.NotEqual(t, before, set.Contains(day))

			set.Toggle(day)
			assert.Equal(t, before, set.Contains(day))
		})
	}
}

func TestBlockedWeekdaySet_ZeroValueToggle(t *testing.T) {
	var set BlockedWeekdaySet

	set.Toggle(Sunday)

	assert.True(t, set.Contains(Sunday))
	assert.Equal(t, []Weekday{Sunday}, set.Days())
}

func TestBlockedWeekdaySet_ContainsIgnoresCase(t *testing.T) {
	var set BlockedWeekdaySet
	set.Toggle("sunday")

	assert.True(t, set.Contains("sunday"))
	assert.True(t, set.Contains(" SUNDAY "))
	assert.True(t, set.Contains(Sunday))
	assert.False(t, set.Contains("Funday"))
}

func TestBlockedWeekdaySet_IgnoresUnknownDays(t *testing.T) {
	set := NewBlockedWeekdaySet("Funday", Monday)
	set.Toggle("Caturday")

	assert.Equal(t, []Weekday{Monday}, set.Days())
}

func TestBlockedWeekdaySet_DaysCanonicalOrder(t *testing.T) {
	set := NewBlockedWeekdaySet(Sunday, Wednesday, Monday, Sunday)

	assert.Equal(t, []Weekday{Monday, Wednesday, Sunday}, set.Days())
	assert.Equal(t, 3, set.Len())
}

func TestDecodeBlockedWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []Weekday
		wantErr bool
	}{
		{name: "absent", raw: "", want: []Weekday{}},
		{name: "valid", raw: `["Sunday","Monday"]`, want: []Weekday{Monday, Sunday}},
		{name: "unknown and non-string entries skipped", raw: `["Sunday", 3, "Someday", null]`, want: []Weekday{Sunday}},
		{name: "null", raw: `null`, want: []Weekday{}},
		{name: "malformed", raw: `["Sunday"`, want: []Weekday{}, wantErr: true},
		{name: "object instead of array", raw: `{"day":"Sunday"}`, want: []Weekday{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := DecodeBlockedWeekdays(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedConfig)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, set.Days())
		})
	}
}

func TestEncodeBlockedWeekdays(t *testing.T) {
	raw, err := EncodeBlockedWeekdays(NewBlockedWeekdaySet(Sunday, Monday))
	require.NoError(t, err)
	assert.JSONEq(t, `["Monday","Sunday"]`, raw)

	raw, err = EncodeBlockedWeekdays(NewBlockedWeekdaySet())
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Wednesday, WeekdayOf(types.NewDate(2024, time.December, 25)))
	assert.Equal(t, Sunday, WeekdayOf(types.NewDate(2024, time.December, 29)))
}

func TestParseWeekday(t *testing.T) {
	day, ok := ParseWeekday(" sunday ")
	assert.True(t, ok)
	assert.Equal(t, Sunday, day)

	_, ok = ParseWeekday("Sun")
	assert.False(t, ok)
}
