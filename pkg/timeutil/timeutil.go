// Package timeutil provides timezone utilities for the group's deployment
// timezone, Tashkent (UTC+5, no DST). "Today" in every report means the
// calendar day in this zone, expressed as an explicit half-open timestamp
// range - never a string-prefix match against a formatted timestamp.
// No external dependencies - uses only standard library.
package timeutil

import "time"

// TashkentTZ is the Tashkent timezone (UTC+5, no DST).
// Uzbekistan abolished DST in 1992, so this is constant year-round.
var TashkentTZ = time.FixedZone("Asia/Tashkent", 5*60*60)

// Now returns the current time in Tashkent timezone.
func Now() time.Time {
	return time.Now().In(TashkentTZ)
}

// ToTashkent converts a time to Tashkent timezone.
func ToTashkent(t time.Time) time.Time {
	return t.In(TashkentTZ)
}

// StartOfDay returns the start of the day (00:00:00) in Tashkent timezone.
func StartOfDay(t time.Time) time.Time {
	local := ToTashkent(t)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, TashkentTZ)
}

// DayRange returns the half-open range [start, end) covering the calendar
// day containing t in Tashkent timezone. A timestamp u belongs to the day
// iff !u.Before(start) && u.Before(end).
func DayRange(t time.Time) (start, end time.Time) {
	start = StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// Date creates a time in Tashkent timezone with the given date.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, TashkentTZ)
}

// DateTime creates a time in Tashkent timezone with the given date and time.
func DateTime(year, month, day, hour, min, sec int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, TashkentTZ)
}

// FormatDate renders a timestamp as a local calendar date (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return ToTashkent(t).Format("2006-01-02")
}

// FormatDateTime renders a timestamp as a local date and time.
func FormatDateTime(t time.Time) string {
	return ToTashkent(t).Format("2006-01-02 15:04")
}

// ══════════════════════════════════════════════════════════════════════════════
// CLOCK
// "Today" is an injected capability, not a global, so tests can pin it.
// ══════════════════════════════════════════════════════════════════════════════

// Clock supplies the current time to components that need "today".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns a Clock backed by the host clock in Tashkent timezone.
func SystemClock() Clock {
	return ClockFunc(Now)
}

// FixedClock returns a Clock that always reports t. For tests.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
