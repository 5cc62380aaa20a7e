package order

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/pkg/errs"
)

var (
	ErrUnknownColumn   = errors.New("unknown order column")
	ErrMalformedFilter = errors.New("malformed column filter")
)

type Column string

const (
	ColumnOrderName  Column = "order_name"
	ColumnPlaceTitle Column = "place_title"
	ColumnStartTime  Column = "start_time"
	ColumnEndTime    Column = "end_time"
	ColumnOrderPhone Column = "order_phone"
	ColumnUID        Column = "uid"
	ColumnCreateTime Column = "create_time"
)

const createTimeLayout = "2006-01-02 15:04:05"

// clock-only parses land in year 0, before the zero time.Time
var minTime = time.Date(-1, time.January, 1, 0, 0, 0, 0, time.UTC)

var columns = []Column{
	ColumnOrderName, ColumnPlaceTitle, ColumnStartTime, ColumnEndTime,
	ColumnOrderPhone, ColumnUID, ColumnCreateTime,
}

type SortKey struct {
	Column Column
	Desc   bool
}

var DefaultSort = []SortKey{
	{Column: ColumnPlaceTitle},
	{Column: ColumnStartTime},
}

// ParseSortKeys reads "place_title,-start_time": most significant column first,
// a leading '-' sorts that column descending. Empty input yields DefaultSort.
func ParseSortKeys(raw string) ([]SortKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSort, nil
	}

	var keys []SortKey
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key := SortKey{}
		if strings.HasPrefix(part, "-") {
			key.Desc = true
			part = part[1:]
		}
		col, err := parseColumn(part)
		if err != nil {
			return nil, err
		}
		key.Column = col
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return DefaultSort, nil
	}
	return keys, nil
}

func parseColumn(name string) (Column, error) {
	col := Column(strings.TrimSpace(name))
	if !slices.Contains(columns, col) {
		return "", errs.Wrapf(ErrUnknownColumn, "column %q", name)
	}
	return col, nil
}

// Sort orders in place. Unparsable times sort first and unparsable uids as 0.
func Sort(orders []Order, keys []SortKey) {
	slices.SortStableFunc(orders, func(a, b Order) int {
		for _, k := range keys {
			c := compareColumn(a, b, k.Column)
			if k.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

func compareColumn(a, b Order, col Column) int {
	switch col {
	case ColumnPlaceTitle:
		return venue.ComparePlaceTitles(a.PlaceTitle, b.PlaceTitle)
	case ColumnStartTime:
		return parseClock(a.StartTime).Compare(parseClock(b.StartTime))
	case ColumnEndTime:
		return parseClock(a.EndTime).Compare(parseClock(b.EndTime))
	case ColumnCreateTime:
		return parseCreateTime(a.CreateTime).Compare(parseCreateTime(b.CreateTime))
	case ColumnUID:
		return cmp.Compare(parseUID(a.UID), parseUID(b.UID))
	case ColumnOrderName:
		return strings.Compare(strings.TrimSpace(a.Name), strings.TrimSpace(b.Name))
	case ColumnOrderPhone:
		return strings.Compare(strings.TrimSpace(a.Phone), strings.TrimSpace(b.Phone))
	default:
		return 0
	}
}

func parseClock(s string) time.Time {
	t, err := venue.ParseClock(strings.TrimSpace(s))
	if err != nil {
		return minTime
	}
	return t
}

func parseCreateTime(s string) time.Time {
	t, err := time.Parse(createTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return minTime
	}
	return t
}

func parseUID(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
