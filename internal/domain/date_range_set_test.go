package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func christmas() DateRange {
	return DateRange{Start: day(time.December, 24), End: day(time.December, 26)}
}

func newYear() DateRange {
	return DateRange{Start: day(time.December, 31), End: day(time.December, 31)}
}

func TestDateRangeSet_AddAppends(t *testing.T) {
	set := NewDateRangeSet(nil)

	require.NoError(t, set.Add(christmas()))
	require.NoError(t, set.Add(newYear()))
	require.NoError(t, set.Add(christmas())) // duplicates are allowed

	assert.Equal(t, []DateRange{christmas(), newYear(), christmas()}, set.Ranges())
}

func TestDateRangeSet_AddRejectsInvalid(t *testing.T) {
	set := NewDateRangeSet([]DateRange{christmas()})

	err := set.Add(DateRange{Start: day(time.December, 26), End: day(time.December, 24)})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Equal(t, []DateRange{christmas()}, set.Ranges())
}

func TestDateRangeSet_EditInPlace(t *testing.T) {
	set := NewDateRangeSet([]DateRange{christmas(), newYear()})

	moved := DateRange{Start: day(time.December, 25), End: day(time.December, 27)}
	require.NoError(t, set.Edit(0, moved))

	assert.Equal(t, []DateRange{moved, newYear()}, set.Ranges())
}

func TestDateRangeSet_EditErrors(t *testing.T) {
	set := NewDateRangeSet([]DateRange{christmas()})

	assert.ErrorIs(t, set.Edit(3, newYear()), ErrIndexOutOfRange)
	assert.ErrorIs(t, set.Edit(0, DateRange{Start: day(time.December, 2), End: day(time.December, 1)}), ErrInvalidDateRange)
	assert.Equal(t, []DateRange{christmas()}, set.Ranges())
}

func TestDateRangeSet_RemoveTwoPhase(t *testing.T) {
	set := NewDateRangeSet([]DateRange{christmas(), newYear()})

	require.NoError(t, set.RequestRemove(0))
	assert.Equal(t, 2, set.Len(), "request must not mutate")

	pending, ok := set.PendingRemoval()
	require.True(t, ok)
	assert.Equal(t, 0, pending)

	removed, err := set.ConfirmRemove()
	require.NoError(t, err)
	assert.Equal(t, christmas(), removed)
	assert.Equal(t, []DateRange{newYear()}, set.Ranges())

	_, ok = set.PendingRemoval()
	assert.False(t, ok)
}

func TestDateRangeSet_RemoveCancel(t *testing.T) {
	set := NewDateRangeSet([]DateRange{christmas(), newYear()})

	require.NoError(t, set.RequestRemove(1))
	assert.True(t, set.CancelRemove())

	assert.Equal(t, []DateRange{christmas(), newYear()}, set.Ranges())
	_, err := set.ConfirmRemove()
	assert.ErrorIs(t, err, ErrNoPendingRemoval)
	assert.False(t, set.CancelRemove())
}

func TestDateRangeSet_RequestRemoveOutOfRange(t *testing.T) {
	set := NewDateRangeSet(nil)

	assert.ErrorIs(t, set.RequestRemove(0), ErrIndexOutOfRange)
	_, ok := set.PendingRemoval()
	assert.False(t, ok)
}

func TestDateRangeSet_RangesIsACopy(t *testing.T) {
	set := NewDateRangeSet([]DateRange{christmas(), newYear()})
	snapshot := set.Ranges()

	require.NoError(t, set.RequestRemove(0))
	_, err := set.ConfirmRemove()
	require.NoError(t, err)

	assert.Equal(t, []DateRange{christmas(), newYear()}, snapshot)
}
