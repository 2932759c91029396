package domain

import (
	"encoding/json"

	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// RuleKind discriminates declarative disabled-date rules
type RuleKind string

const (
	// RuleWeekday disables every occurrence of a weekday
	RuleWeekday RuleKind = "weekday"
	// RuleCutoff disables everything up to and including End
	RuleCutoff RuleKind = "cutoff"
	// RuleRange disables [Start, End]
	RuleRange RuleKind = "range"
)

// Rule is one declarative disabled-date rule as consumed by the buyer date picker
type Rule struct {
	Kind    RuleKind
	Weekday Weekday
	Start   types.Date
	End     types.Date
}

func WeekdayRule(day Weekday) Rule {
	return Rule{Kind: RuleWeekday, Weekday: day}
}

func CutoffRule(end types.Date) Rule {
	return Rule{Kind: RuleCutoff, End: end}
}

func RangeRule(r DateRange) Rule {
	return Rule{Kind: RuleRange, Start: r.Start, End: r.End}
}

// Matches reports whether the rule disables d
func (r Rule) Matches(d types.Date) bool {
	switch r.Kind {
	case RuleWeekday:
		return WeekdayOf(d) == r.Weekday
	case RuleCutoff:
		return !d.After(r.End)
	case RuleRange:
		return !d.Before(r.Start) && !d.After(r.End)
	default:
		return false
	}
}

// MarshalJSON produces the picker's wire shape:
// a weekday rule is the bare weekday name, a cutoff is {"end"}, a range is {"start","end"}
func (r Rule) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RuleWeekday:
		return json.Marshal(string(r.Weekday))
	case RuleCutoff:
		return json.Marshal(struct {
			End string `json:"end"`
		}{End: r.End.String()})
	default:
		return json.Marshal(struct {
			Start string `json:"start"`
			End   string `json:"end"`
		}{Start: r.Start.String(), End: r.End.String()})
	}
}
