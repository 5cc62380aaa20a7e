//go:build unit || e2e

// Package fakebackend serves the three gym backend routes from in-memory data.
package fakebackend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const (
	routeVenueDetail = "/api/gym/detail"
	routeOrderList   = "/api/order/listForGymOrder"
	routeAddOrder    = "/api/order/addByUid"
)

type Place struct {
	ID    int64  `json:"place_id"`
	Title string `json:"title"`
}

type Interval struct {
	ID      int64  `json:"interval_id"`
	Weekday int    `json:"week_day"`
	Start   string `json:"start_time"`
	End     string `json:"end_time"`
	Reserve int    `json:"is_reserve"`
}

type Venue struct {
	Title         string     `json:"title"`
	CategoryID    int64      `json:"category_id"`
	CategoryTitle string     `json:"category_title"`
	StoreID       string     `json:"store_id"`
	Places        []Place    `json:"placeList"`
	Intervals     []Interval `json:"intervalList"`
}

type Order struct {
	PlaceTitle string `json:"place_title"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Date       string `json:"order_date"`
	State      string `json:"order_state"`
	UID        string `json:"uid"`
	Name       string `json:"order_name"`
	Phone      string `json:"order_phone"`
	CreateTime string `json:"create_time"`
}

type Server struct {
	URL string

	mu         sync.Mutex
	venues     map[int64]Venue
	orders     map[string][]Order
	bookings   []map[string]any
	orderCalls int
	rejectAll  string
	failVenues map[int64]bool
}

func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		venues:     map[int64]Venue{},
		orders:     map[string][]Order{},
		failVenues: map[int64]bool{},
	}
	srv := httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(srv.Close)
	s.URL = srv.URL + "/index.php"
	return s
}

// EveryDay builds one interval per weekday for each start, ids counting up from base.
func EveryDay(base int64, starts ...string) []Interval {
	var out []Interval
	id := base
	for wd := range 7 {
		for _, st := range starts {
			h, _ := strconv.Atoi(strings.SplitN(st, ":", 2)[0])
			out = append(out, Interval{
				ID:      id,
				Weekday: wd,
				Start:   st,
				End:     fmt.Sprintf("%02d:00", (h+1)%24),
			})
			id++
		}
	}
	return out
}

func (s *Server) AddVenue(id int64, v Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venues[id] = v
}

func (s *Server) FailVenue(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failVenues[id] = true
}

func (s *Server) AddOrders(venueID int64, date string, orders ...Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := orderKey(venueID, date)
	s.orders[k] = append(s.orders[k], orders...)
}

// RejectBookings makes every booking fail with HTTP 403 and msg.
func (s *Server) RejectBookings(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectAll = msg
}

func (s *Server) Bookings() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Server) OrderCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderCalls
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch q.Get("s") {
	case routeVenueDetail:
		s.serveDetail(w, q.Get("gymId"))
	case routeOrderList:
		s.serveOrders(w, q.Get("gymId"), q.Get("orderDate"))
	case routeAddOrder:
		s.serveBooking(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) serveDetail(w http.ResponseWriter, gymID string) {
	id, _ := strconv.ParseInt(gymID, 10, 64)

	s.mu.Lock()
	v, ok := s.venues[id]
	failed := s.failVenues[id]
	s.mu.Unlock()

	if failed {
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"code": 0, "data": map[string]any{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"code": 1, "data": map[string]any{"detail": v}})
}

func (s *Server) serveOrders(w http.ResponseWriter, gymID, date string) {
	id, _ := strconv.ParseInt(gymID, 10, 64)

	s.mu.Lock()
	s.orderCalls++
	orders := s.orders[orderKey(id, date)]
	s.mu.Unlock()

	if orders == nil {
		orders = []Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"code": 1, "data": map[string]any{"orderList": orders}})
}

func (s *Server) serveBooking(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var env struct {
		Form map[string]any `json:"form"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"code": 0, "msg": "bad form"})
		return
	}

	s.mu.Lock()
	reject := s.rejectAll
	if reject == "" {
		s.bookings = append(s.bookings, env.Form)
	}
	s.mu.Unlock()

	if reject != "" {
		writeJSON(w, http.StatusForbidden, map[string]any{"code": 0, "msg": reject})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"code": 1, "msg": "ok"})
}

func orderKey(venueID int64, date string) string {
	return strconv.FormatInt(venueID, 10) + "/" + date
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
