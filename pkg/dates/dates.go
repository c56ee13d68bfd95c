// Package dates provides day-key helpers for date-scoped records.
package dates

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// DayKey identifies a calendar day as an ISO YYYY-MM-DD string. It is the
// index for every date-scoped record in the app.
type DayKey string

// Today returns the day key for the current local calendar date.
func Today() DayKey {
	return FromTime(time.Now())
}

// FromTime derives a day key from the calendar date of t, ignoring
// time-of-day so the key is stable for the whole day.
func FromTime(t time.Time) DayKey {
	y, m, d := t.Date()
	return DayKey(fmt.Sprintf("%04d-%02d-%02d", y, m, d))
}

// Parse converts an ISO day key back to a time at local midnight.
func Parse(k DayKey) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, string(k), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// AddDays returns the day key n calendar days after k (negative n walks
// backward). Invalid keys are returned unchanged.
func (k DayKey) AddDays(n int) DayKey {
	t, err := Parse(k)
	if err != nil {
		return k
	}
	return FromTime(t.AddDate(0, 0, n))
}

// Valid reports whether k parses as an ISO calendar date.
func (k DayKey) Valid() bool {
	_, err := Parse(k)
	return err == nil
}

func (k DayKey) String() string {
	return string(k)
}

// Seed computes the integer date seed year*10000 + month*100 + day used by
// the daily picker. Months are 1-indexed.
func (k DayKey) Seed() int {
	t, err := Parse(k)
	if err != nil {
		return 0
	}
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// FormatLong renders the day like "January 2, 2006" for display.
func (k DayKey) FormatLong() string {
	t, err := Parse(k)
	if err != nil {
		return string(k)
	}
	return t.Format("January 2, 2006")
}

// FormatReminder converts a stored 24-hour "HH:MM" reminder into a
// 12-hour clock string. Input that does not look like a clock time is
// passed through untouched.
func FormatReminder(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
