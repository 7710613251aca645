package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// MinYear is the earliest year ParseDate accepts. The zero time.Time falls
// before it, so a parsed Date is never mistaken for an absent one.
const MinYear = 1900

var errInvalidDate = errors.New("invalid date")

// Date is a calendar day in UTC.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp; timestamps are
// reduced to their UTC calendar day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errInvalidDate
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return Date{}, errInvalidDate
		}
		t = t.UTC()
	}
	if t.Year() < MinYear {
		return Date{}, errInvalidDate
	}
	return NewDate(t.Date()), nil
}

// AddDays moves the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
