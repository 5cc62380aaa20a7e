package session

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"gym-reserve/internal/domain/occupancy"
	"gym-reserve/internal/domain/order"
	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/pkg/config"
	"gym-reserve/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Coordinator is the single owner of venue schedules, the order cache and the
// open occupancy views. Every read and write of that state runs on its loop
// goroutine; fetch workers hand results back through the same op channel.
type Coordinator struct {
	backend  Backend
	venueIDs []int64
	workers  int
	logger   *slog.Logger

	ops     chan func(*state)
	quit    chan struct{}
	stopped chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	running   bool

	fetchCtx    context.Context
	cancelFetch context.CancelFunc
	fetches     sync.WaitGroup

	st state
}

type state struct {
	schedules map[int64]*venue.Schedule
	cache     *Cache
	views     map[Key]*occupancy.View
}

type LoadReport struct {
	Loaded []int64
	Failed map[int64]error
}

// Snapshot is one rendering of a venue/date: the grid plus the visible orders.
type Snapshot struct {
	Grid   *occupancy.Grid
	Orders []order.Order
}

func NewCoordinator(backend Backend, cfg config.BackendConfig, logger *slog.Logger) *Coordinator {
	workers := cfg.FetchWorkers
	if workers <= 0 {
		workers = 1
	}
	fetchCtx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		backend:     backend,
		venueIDs:    slices.Clone(cfg.VenueIDs),
		workers:     workers,
		logger:      logger,
		ops:         make(chan func(*state)),
		quit:        make(chan struct{}),
		stopped:     make(chan struct{}),
		fetchCtx:    fetchCtx,
		cancelFetch: cancel,
		st: state{
			schedules: make(map[int64]*venue.Schedule),
			cache:     NewCache(),
			views:     make(map[Key]*occupancy.View),
		},
	}
}

func (c *Coordinator) Start() {
	c.startOnce.Do(func() {
		c.running = true
		go c.loop()
	})
}

// Stop ends the loop and waits for outstanding fetch workers. Safe to call twice.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.quit)
		c.cancelFetch()
		if c.running {
			<-c.stopped
		}
		c.fetches.Wait()
	})
}

func (c *Coordinator) loop() {
	defer close(c.stopped)
	for {
		select {
		case op := <-c.ops:
			op(&c.st)
		case <-c.quit:
			return
		}
	}
}

func (c *Coordinator) do(ctx context.Context, op func(*state)) error {
	select {
	case c.ops <- op:
		return nil
	case <-c.quit:
		return errs.ErrCoordinatorStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// call runs fn on the loop and returns its result. Once the loop has accepted the
// op it always runs it, so the reply needs no further select.
func call[T any](ctx context.Context, c *Coordinator, fn func(*state) (T, error)) (T, error) {
	type reply struct {
		v   T
		err error
	}
	ch := make(chan reply, 1)
	if err := c.do(ctx, func(s *state) {
		v, err := fn(s)
		ch <- reply{v: v, err: err}
	}); err != nil {
		var zero T
		return zero, err
	}
	r := <-ch
	return r.v, r.err
}

// LoadSchedules fetches every configured venue's detail on a bounded worker pool and
// swaps the resulting schedules in. A venue that fails keeps its previous schedule,
// or stays absent if it never loaded.
func (c *Coordinator) LoadSchedules(ctx context.Context) (LoadReport, error) {
	built := make([]*venue.Schedule, len(c.venueIDs))
	failures := make([]error, len(c.venueIDs))

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, id := range c.venueIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			detail, err := c.backend.FetchVenueDetail(ctx, id)
			if err != nil {
				failures[i] = err
				return nil
			}
			s, err := venue.NewSchedule(id, detail)
			if err != nil {
				failures[i] = err
				return nil
			}
			built[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return LoadReport{}, err
	}

	return call(ctx, c, func(s *state) (LoadReport, error) {
		report := LoadReport{Failed: make(map[int64]error)}
		for i, id := range c.venueIDs {
			if failures[i] != nil {
				report.Failed[id] = failures[i]
				c.logger.Warn("venue schedule not loaded", "venue_id", id, "error", failures[i])
				continue
			}
			if dup := built[i].DuplicatePlaces(); len(dup) > 0 {
				c.logger.Warn("duplicate place titles, keeping the last id", "venue_id", id, "titles", dup)
			}
			s.schedules[id] = built[i]
			report.Loaded = append(report.Loaded, id)
		}
		if len(s.schedules) == 0 {
			return report, errs.ErrNoVenuesLoaded
		}
		return report, nil
	})
}

func (c *Coordinator) Schedule(ctx context.Context, venueID int64) (*venue.Schedule, error) {
	return call(ctx, c, func(s *state) (*venue.Schedule, error) {
		return s.schedule(venueID)
	})
}

func (s *state) schedule(venueID int64) (*venue.Schedule, error) {
	sch, ok := s.schedules[venueID]
	if !ok {
		return nil, errs.Wrapf(errs.ErrVenueNotFound, "venue %d", venueID)
	}
	return sch, nil
}

// Venues lists loaded venues in configured order.
func (c *Coordinator) Venues(ctx context.Context) ([]venue.Venue, error) {
	return call(ctx, c, func(s *state) ([]venue.Venue, error) {
		out := make([]venue.Venue, 0, len(s.schedules))
		for _, id := range c.venueIDs {
			if sch, ok := s.schedules[id]; ok {
				out = append(out, sch.Venue())
			}
		}
		if len(out) == 0 {
			return nil, errs.ErrNoVenuesLoaded
		}
		return out, nil
	})
}

// Orders returns the cached orders for (venue, date), fetching them on first use.
// Concurrent callers for the same key share one fetch.
func (c *Coordinator) Orders(ctx context.Context, venueID int64, date string) ([]order.Order, error) {
	key := Key{VenueID: venueID, Date: date}
	reply := make(chan Result, 1)

	err := c.do(ctx, func(s *state) {
		if _, err := s.schedule(venueID); err != nil {
			reply <- Result{Err: err}
			return
		}
		if orders, ok := s.cache.Lookup(key); ok {
			reply <- Result{Orders: orders}
			return
		}
		if s.cache.Await(key, reply) {
			c.fetch(key)
		}
	})
	if err != nil {
		return nil, err
	}

	select {
	case r := <-reply:
		return r.Orders, r.Err
	case <-ctx.Done():
		// the fetch keeps going and still fills the cache for key
		return nil, ctx.Err()
	case <-c.quit:
		return nil, errs.ErrCoordinatorStopped
	}
}

// fetch runs on the loop; the worker it starts only touches state through an op.
func (c *Coordinator) fetch(key Key) {
	c.fetches.Add(1)
	go func() {
		defer c.fetches.Done()

		started := time.Now()
		orders, err := c.backend.FetchOrders(c.fetchCtx, key.VenueID, key.Date)
		if err != nil {
			c.logger.Warn("order fetch failed", "venue_id", key.VenueID, "date", key.Date, "error", err)
		} else {
			c.logger.Debug("orders fetched", "venue_id", key.VenueID, "date", key.Date,
				"count", len(orders), "duration", time.Since(started))
		}

		op := func(s *state) {
			res, waiters := s.cache.Complete(key, orders, err)
			for _, w := range waiters {
				w <- Result{Orders: slices.Clone(res.Orders), Err: res.Err}
			}
		}
		select {
		case c.ops <- op:
		case <-c.quit:
		}
	}()
}

// Occupancy builds the grid for (venue, date) and opens a fresh view over its orders,
// clearing any previous filter. A weekday without intervals returns the empty grid
// together with occupancy.ErrNoSlots.
func (c *Coordinator) Occupancy(ctx context.Context, venueID int64, date time.Time) (Snapshot, error) {
	sch, err := c.Schedule(ctx, venueID)
	if err != nil {
		return Snapshot{}, err
	}
	day := venue.FormatDate(date)
	orders, err := c.Orders(ctx, venueID, day)
	if err != nil {
		return Snapshot{}, err
	}

	grid, gridErr := occupancy.BuildGrid(sch, date, orders)

	key := Key{VenueID: venueID, Date: day}
	if err := c.do(ctx, func(s *state) {
		s.views[key] = occupancy.NewView(slices.Clone(orders))
	}); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Grid: grid, Orders: orders}, gridErr
}

// ToggleFilter flips the cell filter of the (venue, date) view and returns the orders
// now visible. The view is opened on demand.
func (c *Coordinator) ToggleFilter(ctx context.Context, venueID int64, date string, cell occupancy.CellKey) ([]order.Order, *occupancy.CellKey, error) {
	orders, err := c.Orders(ctx, venueID, date)
	if err != nil {
		return nil, nil, err
	}

	type toggled struct {
		visible []order.Order
		active  *occupancy.CellKey
	}
	key := Key{VenueID: venueID, Date: date}
	res, err := call(ctx, c, func(s *state) (toggled, error) {
		v, ok := s.views[key]
		if !ok {
			v = occupancy.NewView(orders)
			s.views[key] = v
		}
		visible := v.Toggle(cell)
		if active, on := v.Active(); on {
			return toggled{visible: visible, active: &active}, nil
		}
		return toggled{visible: visible}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return res.visible, res.active, nil
}
