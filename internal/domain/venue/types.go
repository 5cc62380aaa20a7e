package venue

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ExternalID is an opaque backend identifier. It keeps the raw JSON token so that
// ids are echoed back with the type the backend sent them in (number or string).
type ExternalID string

func RawID(raw string) ExternalID {
	return ExternalID(strings.TrimSpace(raw))
}

func NumericID(n int64) ExternalID {
	return ExternalID(strconv.FormatInt(n, 10))
}

func StringID(s string) ExternalID {
	b, _ := json.Marshal(s)
	return ExternalID(b)
}

func (id ExternalID) IsZero() bool {
	return id == "" || id == `""` || id == "null"
}

func (id ExternalID) String() string {
	if id.IsZero() {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(id), &s); err == nil {
		return s
	}
	return string(id)
}

func (id ExternalID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte(`""`), nil
	}
	if !json.Valid([]byte(id)) {
		return json.Marshal(string(id))
	}
	return []byte(id), nil
}

func (id *ExternalID) UnmarshalJSON(b []byte) error {
	*id = RawID(string(b))
	return nil
}

type Venue struct {
	ID            int64
	Title         string
	CategoryID    ExternalID
	CategoryTitle string
	StoreID       ExternalID
}

type Place struct {
	Title string
	ID    ExternalID
}

// Interval is a weekly recurring, venue-wide time window. Per-place occupancy is
// not recorded here; it comes from the order list.
type Interval struct {
	ID       ExternalID
	Weekday  int
	Start    string
	End      string
	Reserved bool
}

func (iv Interval) Label() string {
	return SlotLabel(iv.Start, iv.End)
}

func (iv Interval) Bookable() bool {
	return !iv.Reserved
}

func SlotLabel(start, end string) string {
	return start + "-" + end
}

// Detail is the decoded gym detail record, before any normalization.
type Detail struct {
	Title         string
	CategoryID    ExternalID
	CategoryTitle string
	StoreID       ExternalID
	Places        []PlaceDetail
	Intervals     []IntervalDetail
}

type PlaceDetail struct {
	Title string
	ID    ExternalID
}

type IntervalDetail struct {
	ID      ExternalID
	Weekday int
	Start   string
	End     string
	// nil when the backend omitted is_reserve
	Reserve *bool
}
