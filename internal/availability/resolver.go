// Package availability resolves blocked weekdays, blocked date ranges and the
// no-past-dates policy into disabled calendar dates.
//
// Everything here is pure: callers pass the configuration and "today" in.
// Both answers handed to consumers (explicit days for the merchant editor,
// declarative rules for the buyer picker) are derived from Policy.Rules.
package availability

import (
	"time"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// Policy is the full blocked-date configuration of a shop as seen on Today
type Policy struct {
	Weekdays domain.BlockedWeekdaySet
	Ranges   []domain.DateRange
	Today    types.Date
}

// Rules returns the declarative answer: one rule per blocked weekday,
// exactly one "up to and including yesterday" cutoff, one rule per range.
func (p Policy) Rules() []domain.Rule {
	days := p.Weekdays.Days()
	rules := make([]domain.Rule, 0, len(days)+1+len(p.Ranges))

	for _, day := range days {
		rules = append(rules, domain.WeekdayRule(day))
	}
	rules = append(rules, domain.CutoffRule(p.Today.AddDays(-1)))
	for _, r := range p.Ranges {
		rules = append(rules, domain.RangeRule(r))
	}

	return rules
}

// IsDisabled reports whether a buyer may not select d
func (p Policy) IsDisabled(d types.Date) bool {
	return matchesAny(p.Rules(), d)
}

// DisabledDaysInMonth lists every disabled day of the given month in calendar order
func (p Policy) DisabledDaysInMonth(year int, month time.Month) []types.Date {
	rules := p.Rules()
	first := types.NewDate(year, month, 1)
	next := types.NewDate(year, month+1, 1)

	disabled := make([]types.Date, 0, first.DaysUntil(next))
	for d := first; d.Before(next); d = d.AddDays(1) {
		if matchesAny(rules, d) {
			disabled = append(disabled, d)
		}
	}
	return disabled
}

// BlockedDays returns the explicit answer for the merchant editor: every day of
// every range except the one at excludeIndex, concatenated in range order.
// Days covered by overlapping ranges appear once per covering range.
// A nil excludeIndex, or one outside the collection, excludes nothing.
func BlockedDays(ranges []domain.DateRange, excludeIndex *int) []types.Date {
	total := 0
	for i, r := range ranges {
		if !excluded(i, excludeIndex) {
			total += r.DayCount()
		}
	}

	days := make([]types.Date, 0, total)
	for i, r := range ranges {
		if excluded(i, excludeIndex) {
			continue
		}
		days = append(days, expand(domain.RangeRule(r))...)
	}
	return days
}

// Window is an inclusive span of calendar days a caller wants answered
type Window struct {
	From types.Date
	To   types.Date
}

// BlockedDaysIn is BlockedDays clipped to window, so the cost is bounded by
// the window size rather than by range length. Order and duplicates follow
// BlockedDays.
func BlockedDaysIn(ranges []domain.DateRange, excludeIndex *int, window Window) []types.Date {
	days := make([]types.Date, 0)
	if window.From.After(window.To) {
		return days
	}

	for i, r := range ranges {
		if excluded(i, excludeIndex) {
			continue
		}
		clipped, ok := clip(r, window)
		if !ok {
			continue
		}
		days = append(days, expand(domain.RangeRule(clipped))...)
	}
	return days
}

func clip(r domain.DateRange, window Window) (domain.DateRange, bool) {
	if r.End.Before(window.From) || r.Start.After(window.To) {
		return domain.DateRange{}, false
	}
	if r.Start.Before(window.From) {
		r.Start = window.From
	}
	if r.End.After(window.To) {
		r.End = window.To
	}
	return r, true
}

func excluded(index int, excludeIndex *int) bool {
	return excludeIndex != nil && *excludeIndex == index
}

// expand enumerates the days a bounded range rule disables
func expand(rule domain.Rule) []types.Date {
	days := make([]types.Date, 0, max(rule.Start.DaysUntil(rule.End)+1, 0))
	for d := rule.Start; rule.Matches(d); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func matchesAny(rules []domain.Rule, d types.Date) bool {
	for _, rule := range rules {
		if rule.Matches(d) {
			return true
		}
	}
	return false
}
