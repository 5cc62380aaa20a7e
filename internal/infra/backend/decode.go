package backend

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gym-reserve/internal/domain/order"
	"gym-reserve/internal/domain/venue"

	"github.com/tidwall/gjson"
)

var (
	errInvalidJSON   = errors.New("response is not valid JSON")
	errMissingDetail = errors.New("data.detail missing")
)

// The backend is loose about types: ids and flags arrive as numbers or strings,
// and optional fields may be absent. gjson lets each field be read on its own terms.

func decodeDetail(body string) (venue.Detail, error) {
	if !gjson.Valid(body) {
		return venue.Detail{}, errInvalidJSON
	}
	d := gjson.Get(body, "data.detail")
	if !d.IsObject() {
		return venue.Detail{}, errMissingDetail
	}

	detail := venue.Detail{
		Title:         d.Get("title").String(),
		CategoryID:    externalID(d.Get("category_id")),
		CategoryTitle: d.Get("category_title").String(),
		StoreID:       externalID(d.Get("store_id")),
	}

	for _, p := range d.Get("placeList").Array() {
		detail.Places = append(detail.Places, venue.PlaceDetail{
			Title: p.Get("title").String(),
			ID:    externalID(p.Get("place_id")),
		})
	}

	for i, iv := range d.Get("intervalList").Array() {
		weekday, err := intValue(iv.Get("week_day"))
		if err != nil {
			return venue.Detail{}, fmt.Errorf("intervalList[%d].week_day: %w", i, err)
		}
		detail.Intervals = append(detail.Intervals, venue.IntervalDetail{
			ID:      externalID(iv.Get("interval_id")),
			Weekday: weekday,
			Start:   strings.TrimSpace(iv.Get("start_time").String()),
			End:     strings.TrimSpace(iv.Get("end_time").String()),
			Reserve: reserveFlag(iv.Get("is_reserve")),
		})
	}
	return detail, nil
}

// decodeOrders treats a missing list as no orders for the date.
func decodeOrders(body string, venueID int64, date string) ([]order.Order, error) {
	if !gjson.Valid(body) {
		return nil, errInvalidJSON
	}
	list := gjson.Get(body, "data.orderList")
	if !list.Exists() || list.Type == gjson.Null {
		return []order.Order{}, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("data.orderList is %s, not a list", list.Type)
	}

	items := list.Array()
	orders := make([]order.Order, 0, len(items))
	for _, o := range items {
		day := o.Get("order_date").String()
		if day == "" {
			day = date
		}
		orders = append(orders, order.Order{
			VenueID:    venueID,
			PlaceTitle: o.Get("place_title").String(),
			StartTime:  o.Get("start_time").String(),
			EndTime:    o.Get("end_time").String(),
			Date:       day,
			State:      o.Get("order_state").String(),
			UID:        o.Get("uid").String(),
			Name:       o.Get("order_name").String(),
			Phone:      o.Get("order_phone").String(),
			CreateTime: o.Get("create_time").String(),
		})
	}
	return orders, nil
}

func externalID(r gjson.Result) venue.ExternalID {
	if !r.Exists() {
		return venue.ExternalID("")
	}
	return venue.RawID(r.Raw)
}

func intValue(r gjson.Result) (int, error) {
	switch r.Type {
	case gjson.Number:
		if r.Num != math.Trunc(r.Num) {
			return 0, fmt.Errorf("%s is not an integer", r.Raw)
		}
		return int(r.Num), nil
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(r.Str))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", r.Str)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected %s value", r.Type)
	}
}

// reserveFlag recognizes only 0/1 and false/true, as numbers, strings or bools.
// Anything else returns nil, which the schedule treats as held.
func reserveFlag(r gjson.Result) *bool {
	var held bool
	switch r.Type {
	case gjson.True:
		held = true
	case gjson.False:
		held = false
	case gjson.Number:
		switch r.Raw {
		case "0":
			held = false
		case "1":
			held = true
		default:
			return nil
		}
	case gjson.String:
		switch strings.TrimSpace(r.Str) {
		case "0":
			held = false
		case "1":
			held = true
		default:
			return nil
		}
	default:
		return nil
	}
	return &held
}
