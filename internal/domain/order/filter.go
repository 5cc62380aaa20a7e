package order

import (
	"slices"
	"strings"

	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/pkg/errs"
	"gym-reserve/internal/pkg/textnorm"
)

// ColumnFilter keeps orders whose column value is one of Values.
type ColumnFilter struct {
	Column Column
	Values []string
}

// ParseFilters reads "place_title:4号,5号;start_time:19:00". Columns are separated
// by ';', included values by ','. Empty input means no filtering.
func ParseFilters(raw string) ([]ColumnFilter, error) {
	var filters []ColumnFilter
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, list, ok := strings.Cut(part, ":")
		if !ok {
			return nil, errs.Wrapf(ErrMalformedFilter, "%q has no ':'", part)
		}
		col, err := parseColumn(name)
		if err != nil {
			return nil, err
		}

		f := ColumnFilter{Column: col}
		for _, v := range strings.Split(list, ",") {
			if v = canonicalValue(col, v); v != "" && !slices.Contains(f.Values, v) {
				f.Values = append(f.Values, v)
			}
		}
		if len(f.Values) == 0 {
			return nil, errs.Wrapf(ErrMalformedFilter, "column %q lists no values", col)
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// Filter returns the orders matching every filter, keeping their order.
func Filter(orders []Order, filters []ColumnFilter) []Order {
	if len(filters) == 0 {
		return orders
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if matchesAll(o, filters) {
			out = append(out, o)
		}
	}
	return out
}

func matchesAll(o Order, filters []ColumnFilter) bool {
	for _, f := range filters {
		if !slices.Contains(f.Values, canonicalValue(f.Column, o.value(f.Column))) {
			return false
		}
	}
	return true
}

func (o Order) value(col Column) string {
	switch col {
	case ColumnPlaceTitle:
		return o.PlaceTitle
	case ColumnStartTime:
		return o.StartTime
	case ColumnEndTime:
		return o.EndTime
	case ColumnCreateTime:
		return o.CreateTime
	case ColumnUID:
		return o.UID
	case ColumnOrderName:
		return o.Name
	case ColumnOrderPhone:
		return o.Phone
	default:
		return ""
	}
}

// canonicalValue makes "场地4号" match "4号" and "9:00" match "09:00".
func canonicalValue(col Column, v string) string {
	v = strings.TrimSpace(textnorm.ConvertSymbols(v))
	if v == "" {
		return ""
	}
	switch col {
	case ColumnPlaceTitle:
		return textnorm.PlaceTitle(v)
	case ColumnStartTime, ColumnEndTime:
		if t, err := venue.ParseClock(v); err == nil {
			return venue.FormatClock(t)
		}
	}
	return v
}
