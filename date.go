package tmdb

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date in TMDB's "YYYY-MM-DD" wire format. The API
// reports unknown dates as null or as an empty string; both decode to
// the zero Date, so callers only need IsZero.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", value, err)
	}
	return Date{Time: t}, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == "null" || value == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return fmt.Errorf("invalid date value %s", value)
	}
	parsed, err := ParseDate(value[1 : len(value)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The zero Date marshals as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// String returns the date in wire format, or an empty string for the
// zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// Year returns the calendar year, or zero for the zero Date.
func (d Date) Year() int {
	if d.IsZero() {
		return 0
	}
	return d.Time.Year()
}
