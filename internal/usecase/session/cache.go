package session

import (
	"slices"

	"gym-reserve/internal/domain/order"
)

type Key struct {
	VenueID int64
	Date    string
}

type Result struct {
	Orders []order.Order
	Err    error
}

// Waiter receives exactly one Result. The channel must have room for it.
type Waiter chan<- Result

// Cache maps (venue, date) to the orders fetched for it. Entries never expire.
// It is not safe for concurrent use; the coordinator loop owns it.
type Cache struct {
	entries map[Key][]order.Order
	pending map[Key][]Waiter
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[Key][]order.Order),
		pending: make(map[Key][]Waiter),
	}
}

func (c *Cache) Lookup(key Key) ([]order.Order, bool) {
	orders, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(orders), true
}

// Store normalizes place titles before keeping the list.
func (c *Cache) Store(key Key, orders []order.Order) []order.Order {
	normalized := order.NormalizeAll(orders)
	c.entries[key] = normalized
	return slices.Clone(normalized)
}

// Await queues w for key's next result. It reports true for the first waiter,
// which is the caller's cue to start the fetch.
func (c *Cache) Await(key Key, w Waiter) bool {
	queued := c.pending[key]
	c.pending[key] = append(queued, w)
	return len(queued) == 0
}

func (c *Cache) InFlight(key Key) bool {
	return len(c.pending[key]) > 0
}

// Complete records a fetch outcome and hands back the waiters to notify. Failed
// fetches are not cached, so the next request for key fetches again.
func (c *Cache) Complete(key Key, orders []order.Order, err error) (Result, []Waiter) {
	waiters := c.pending[key]
	delete(c.pending, key)

	if err != nil {
		return Result{Err: err}, waiters
	}
	return Result{Orders: c.Store(key, orders)}, waiters
}

func (c *Cache) Len() int {
	return len(c.entries)
}
