package venue

import (
	"errors"
	"strings"
	"time"
)

var errSlotLabel = errors.New(`slot label is not "HH:MM-HH:MM"`)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	SlotDuration = time.Hour
)

// WeekdayOf converts a calendar date to the backend's week_day, where 0 is Sunday.
// Every date→weekday conversion must go through here.
func WeekdayOf(date time.Time) int {
	// time.Weekday is already Sunday-based, unlike a Monday-based index
	return int(date.Weekday())
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock accepts a 24-hour HH:MM wall-clock time.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(ClockLayout, s)
}

func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// SlotBounds canonicalizes start and derives the fixed one-hour end. The end wraps
// past midnight the same way a wall clock does.
func SlotBounds(start string) (string, string, error) {
	t, err := ParseClock(start)
	if err != nil {
		return "", "", err
	}
	return FormatClock(t), FormatClock(t.Add(SlotDuration)), nil
}

// CanonicalSlotLabel parses "9:00-10:00" and returns the zero padded "09:00-10:00"
// that grid cells are keyed by.
func CanonicalSlotLabel(label string) (string, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(label), "-")
	if !ok {
		return "", errSlotLabel
	}
	s, err := ParseClock(strings.TrimSpace(start))
	if err != nil {
		return "", errSlotLabel
	}
	e, err := ParseClock(strings.TrimSpace(end))
	if err != nil {
		return "", errSlotLabel
	}
	return SlotLabel(FormatClock(s), FormatClock(e)), nil
}

// DateWindow is the inclusive range today+lead .. today+last as UTC calendar dates,
// comparable with ParseDate results.
func DateWindow(today time.Time, lead, last int) (time.Time, time.Time) {
	base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, lead), base.AddDate(0, 0, last)
}

func DatesIn(first, last time.Time) []time.Time {
	var out []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
