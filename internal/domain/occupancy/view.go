package occupancy

import (
	"gym-reserve/internal/domain/order"
)

// View is the order list of one open venue/date with at most one active cell filter.
type View struct {
	orders []order.Order
	active *CellKey
}

func NewView(orders []order.Order) *View {
	return &View{orders: orders}
}

// Toggle narrows the list to key's orders, or clears the filter when key is already active.
func (v *View) Toggle(key CellKey) []order.Order {
	if v.active != nil && *v.active == key {
		v.active = nil
	} else {
		k := key
		v.active = &k
	}
	return v.Visible()
}

func (v *View) Visible() []order.Order {
	if v.active == nil {
		out := make([]order.Order, len(v.orders))
		copy(out, v.orders)
		return out
	}

	var out []order.Order
	for _, o := range v.orders {
		if o.PlaceTitle == v.active.Place && o.SlotLabel() == v.active.Slot {
			out = append(out, o)
		}
	}
	return out
}

func (v *View) Active() (CellKey, bool) {
	if v.active == nil {
		return CellKey{}, false
	}
	return *v.active, true
}
