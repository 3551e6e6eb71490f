// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	HoursInADay = 24
	noon        = 12
)

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// TruncateHour drops the minutes, seconds and nanoseconds of t.
func TruncateHour(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		t.Hour(),
		0,
		0,
		0,
		t.Location(),
	)
}

// MinuteKey identifies t at minute resolution. Two times with the same key
// are the same slot regardless of their seconds or location.
func MinuteKey(t time.Time) int64 {
	return t.Truncate(time.Minute).Unix()
}

// SameMinute reports whether a and b fall within the same minute.
func SameMinute(a, b time.Time) bool {
	return MinuteKey(a) == MinuteKey(b)
}

// FormatHour renders an hour of the day as a short label such as "9am",
// "12pm" or, on a 24-hour clock, "09:00".
func FormatHour(hour int, twentyFourHour bool) string {
	if twentyFourHour {
		return fmt.Sprintf("%02d:00", hour%HoursInADay)
	}

	h := hour % noon
	if h == 0 {
		h = noon
	}

	abb := "pm"
	if hour < noon || hour == HoursInADay {
		abb = "am"
	}

	return fmt.Sprintf("%d%s", h, abb)
}

// ParseDate converts a human date such as "today", "next monday" or
// "2026-10-21 3pm" into a time relative to now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "now") {
		return now, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q as a date: %w", s, err)
	}

	return dt.Time, nil
}
