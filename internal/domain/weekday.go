package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// Weekday is one of the seven canonical weekday names
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// AllWeekdays in display order
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdaysByTime = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// ParseWeekday accepts a canonical weekday name, case-insensitively
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.TrimSpace(s)
	for _, day := range AllWeekdays {
		if strings.EqualFold(string(day), s) {
			return day, true
		}
	}
	return "", false
}

// WeekdayOf returns the weekday a calendar date falls on
func WeekdayOf(d types.Date) Weekday {
	return weekdaysByTime[d.Weekday()]
}

// BlockedWeekdaySet is the set of weekdays on which nothing can be scheduled
type BlockedWeekdaySet struct {
	days map[Weekday]struct{}
}

// NewBlockedWeekdaySet builds a set from the given days, ignoring unknown values
func NewBlockedWeekdaySet(days ...Weekday) BlockedWeekdaySet {
	set := BlockedWeekdaySet{days: make(map[Weekday]struct{}, len(days))}
	for _, day := range days {
		if canonical, ok := ParseWeekday(string(day)); ok {
			set.days[canonical] = struct{}{}
		}
	}
	return set
}

// Toggle flips membership of day. Unknown days are ignored.
func (s *BlockedWeekdaySet) Toggle(day Weekday) {
	canonical, ok := ParseWeekday(string(day))
	if !ok {
		return
	}
	if s.days == nil {
		s.days = make(map[Weekday]struct{}, len(AllWeekdays))
	}
	if _, blocked := s.days[canonical]; blocked {
		delete(s.days, canonical)
		return
	}
	s.days[canonical] = struct{}{}
}

// Contains reports whether day is blocked. Day names match case-insensitively.
func (s BlockedWeekdaySet) Contains(day Weekday) bool {
	canonical, ok := ParseWeekday(string(day))
	if !ok {
		return false
	}
	_, ok = s.days[canonical]
	return ok
}

// Days returns blocked days in canonical Monday..Sunday order
func (s BlockedWeekdaySet) Days() []Weekday {
	days := make([]Weekday, 0, len(s.days))
	for _, day := range AllWeekdays {
		if s.Contains(day) {
			days = append(days, day)
		}
	}
	return days
}

func (s BlockedWeekdaySet) Len() int {
	return len(s.days)
}

// MarshalJSON serializes the set as array<Weekday>
func (s BlockedWeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Days())
}

// DecodeBlockedWeekdays parses the stored blockedDays blob.
// An empty, malformed or non-array value yields the empty set together with an
// error the caller may log; unknown or non-string entries are skipped silently.
func DecodeBlockedWeekdays(raw string) (BlockedWeekdaySet, error) {
	if strings.TrimSpace(raw) == "" {
		return NewBlockedWeekdaySet(), nil
	}

	var items []interface{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return NewBlockedWeekdaySet(), fmt.Errorf("%w: blockedDays: %v", ErrMalformedConfig, err)
	}

	days := make([]Weekday, 0, len(items))
	for _, item := range items {
		if name, ok := item.(string); ok {
			days = append(days, Weekday(name))
		}
	}
	return NewBlockedWeekdaySet(days...), nil
}

// EncodeBlockedWeekdays serializes the set for the blockedDays key
func EncodeBlockedWeekdays(s BlockedWeekdaySet) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
