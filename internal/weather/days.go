package weather

import (
	"encoding/json"
	"fmt"
	"time"
	_ "time/tzdata"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time of day and no timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// TodayIn returns the calendar date of now in the named IANA timezone.
// An empty or unknown timezone falls back to UTC.
func TodayIn(timezone string, now time.Time) Date {
	return DateOf(now.In(LoadTimezone(timezone)))
}

// LoadTimezone resolves an IANA timezone name, falling back to UTC.
func LoadTimezone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// DaysSince returns the number of calendar days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.midnight().Sub(other.midnight()).Hours() / 24)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

func (d Date) String() string {
	return d.midnight().Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LabelDay names date relative to today: "Today", "Tomorrow", or the full
// English weekday name. Both arguments are calendar dates, so no timezone
// conversion happens here; callers pick the calendar (see TodayIn).
func LabelDay(date, today Date) string {
	switch date.DaysSince(today) {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return date.Weekday().String()
	}
}
