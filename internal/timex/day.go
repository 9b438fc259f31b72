// Package timex holds small time helpers: a calendar Day without time-of-day
// semantics and a JSON-friendly Duration.
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DayLayout is the textual form of a Day, used in JSON, SQL and the CLI.
const DayLayout = "2006-01-02"

// Day is a calendar day. The zero value is "no day".
type Day struct {
	t time.Time
}

// NewDay normalizes the given components, so NewDay(2024, 1, 32) is Feb 1.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the calendar day of now in now's own location.
func Today(now time.Time) Day {
	y, m, d := now.Date()
	return NewDay(y, m, d)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return Day{t: t}, nil
}

// MustParseDay is ParseDay for literals; it panics on malformed input.
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Day) IsZero() bool { return d.t.IsZero() }

// AddDays shifts d by n calendar days, rolling over months and years.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

func (d Day) Before(o Day) bool { return d.t.Before(o.t) }
func (d Day) Equal(o Day) bool  { return d.t.Equal(o.t) }

// Time returns midnight UTC of d.
func (d Day) Time() time.Time { return d.t }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DayLayout)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores a Day as its YYYY-MM-DD text so the same column works on
// SQLite and PostgreSQL.
func (d Day) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan accepts TEXT, BLOB or a driver-decoded time value.
func (d *Day) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Day{}
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		*d = Today(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into timex.Day", src)
	}
}
