package domain

import (
	"fmt"
	"time"
)

// DateLayout is the layout of every date key.
const DateLayout = "2006-01-02"

// DefaultTimeZone is the zone whose calendar date keys the records.
const DefaultTimeZone = "Asia/Hong_Kong"

// LoadZone loads the named zone. Hong Kong falls back to a fixed UTC+8 zone
// when tzdata is not installed; any other unknown name falls back to UTC.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}
	if name == DefaultTimeZone {
		return time.FixedZone("HKT", 8*60*60), nil
	}
	return time.UTC, fmt.Errorf("load zone %q: %w", name, err)
}

// Clock yields "now" in the configured zone.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

// NewClock returns a wall clock for loc.
func NewClock(loc *time.Location) Clock {
	return Clock{Loc: loc, Now: time.Now}
}

func (c Clock) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Loc
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// Time returns the current time in the clock's zone.
func (c Clock) Time() time.Time {
	return c.now()
}

// Today returns today's date key.
func (c Clock) Today() string {
	return c.now().Format(DateLayout)
}

// Weekday returns today's weekday key.
func (c Clock) Weekday() Weekday {
	return WeekdayOf(c.now().Weekday())
}

// ValidDate reports whether s is a real YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a date key.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DateKey formats a calendar day as a date key.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Weekday is the abbreviation used to key the weekly routine.
type Weekday string

const (
	Sunday    Weekday = "Sun"
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
)

// Weekdays lists the routine keys Sunday first.
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf maps a time.Weekday to its routine key.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekdays[int(d)%7]
}

// ParseWeekday accepts a routine key.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range Weekdays {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}
