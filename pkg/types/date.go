package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout формат календарной даты YYYY-MM-DD
	DateLayout = "2006-01-02"
	// InstantLayout формат ISO-8601 instant, в котором хранятся границы диапазонов
	InstantLayout = "2006-01-02T15:04:05.000Z"
)

var ErrInvalidDate = errors.New("types: invalid date")

// Date календарная дата без времени и часового пояса
// Внутри хранится как полночь UTC, поэтому шаг в один день всегда равен 24 часам
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня (переполнение нормализуется как в time.Date)
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf берёт календарную дату момента t в его собственной локации
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate разбирает строку формата YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(parsed), nil
}

// ParseInstant разбирает ISO-8601 instant и возвращает его дату в UTC
// Время суток и смещение отбрасываются после приведения к UTC.
// Строка без времени принимается как дата.
func ParseInstant(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(parsed.UTC()), nil
	}
	if parsed, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return DateOf(parsed), nil
	}
	return ParseDate(s)
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Instant возвращает дату как ISO-8601 instant на полночь UTC
func (d Date) Instant() string {
	return d.t.Format(InstantLayout)
}

// Time возвращает полночь UTC этой даты
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DaysUntil количество дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// Long форматирует дату как "Monday, December 23, 2024"
func (d Date) Long() string {
	return d.t.Format("Monday, January 2, 2006")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	parsed, err := ParseInstant(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
