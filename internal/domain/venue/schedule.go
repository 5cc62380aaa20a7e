package venue

import (
	"cmp"
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"gym-reserve/internal/pkg/errs"
	"gym-reserve/internal/pkg/textnorm"
)

var (
	ErrDataShape = errors.New("malformed venue detail")
)

// Schedule is a read-only snapshot of one venue's places and weekly intervals.
type Schedule struct {
	venue      Venue
	places     map[string]ExternalID
	titles     []string
	intervals  []Interval
	duplicates []string
}

func NewSchedule(venueID int64, d Detail) (*Schedule, error) {
	places := make(map[string]ExternalID, len(d.Places))
	var duplicates []string
	for _, p := range d.Places {
		title := textnorm.PlaceTitle(p.Title)
		if _, seen := places[title]; seen {
			duplicates = append(duplicates, title)
		}
		// last write wins
		places[title] = p.ID
	}

	intervals := make([]Interval, 0, len(d.Intervals))
	for i, iv := range d.Intervals {
		if iv.Weekday < 0 || iv.Weekday > 6 {
			return nil, errs.Wrapf(ErrDataShape, "venue %d interval #%d: week_day %d out of range", venueID, i, iv.Weekday)
		}
		start, err := ParseClock(iv.Start)
		if err != nil {
			return nil, errs.Wrapf(ErrDataShape, "venue %d interval #%d: start_time %q is not HH:MM", venueID, i, iv.Start)
		}
		end, err := ParseClock(iv.End)
		if err != nil {
			return nil, errs.Wrapf(ErrDataShape, "venue %d interval #%d: end_time %q is not HH:MM", venueID, i, iv.End)
		}

		reserved := true
		if iv.Reserve != nil {
			reserved = *iv.Reserve
		}
		intervals = append(intervals, Interval{
			ID:       iv.ID,
			Weekday:  iv.Weekday,
			Start:    FormatClock(start),
			End:      FormatClock(end),
			Reserved: reserved,
		})
	}

	titles := make([]string, 0, len(places))
	for title := range places {
		titles = append(titles, title)
	}
	sort.Slice(titles, func(i, j int) bool { return ComparePlaceTitles(titles[i], titles[j]) < 0 })

	return &Schedule{
		venue: Venue{
			ID:            venueID,
			Title:         strings.TrimSpace(d.Title),
			CategoryID:    d.CategoryID,
			CategoryTitle: d.CategoryTitle,
			StoreID:       d.StoreID,
		},
		places:     places,
		titles:     titles,
		intervals:  intervals,
		duplicates: duplicates,
	}, nil
}

func (s *Schedule) Venue() Venue { return s.venue }

// PlaceID looks up an already normalized place title.
func (s *Schedule) PlaceID(title string) (ExternalID, bool) {
	id, ok := s.places[title]
	return id, ok
}

// PlaceTitles returns titles in natural order (2号 before 10号).
func (s *Schedule) PlaceTitles() []string {
	out := make([]string, len(s.titles))
	copy(out, s.titles)
	return out
}

func (s *Schedule) Places() []Place {
	out := make([]Place, 0, len(s.titles))
	for _, title := range s.titles {
		out = append(out, Place{Title: title, ID: s.places[title]})
	}
	return out
}

func (s *Schedule) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

func (s *Schedule) IntervalsOn(weekday int) []Interval {
	var out []Interval
	for _, iv := range s.intervals {
		if iv.Weekday == weekday {
			out = append(out, iv)
		}
	}
	return out
}

// Lookup finds the first interval whose (weekday, start, end) match exactly.
func (s *Schedule) Lookup(weekday int, start, end string) (Interval, bool) {
	for _, iv := range s.intervals {
		if iv.Weekday == weekday && iv.Start == start && iv.End == end {
			return iv, true
		}
	}
	return Interval{}, false
}

// DuplicatePlaces lists normalized titles that appeared more than once in the detail.
func (s *Schedule) DuplicatePlaces() []string {
	out := make([]string, len(s.duplicates))
	copy(out, s.duplicates)
	return out
}

// ComparePlaceTitles orders numbered places numerically and puts unnumbered ones last.
func ComparePlaceTitles(a, b string) int {
	na, okA := leadingNumber(a)
	nb, okB := leadingNumber(b)
	switch {
	case okA && okB && na != nb:
		return cmp.Compare(na, nb)
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func leadingNumber(s string) (int, bool) {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == 0 {
		return 0, false
	}
	if end < 0 {
		end = len(s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
