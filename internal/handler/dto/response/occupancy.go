package response

import (
	"gym-reserve/internal/domain/occupancy"
	"gym-reserve/internal/domain/order"
	"gym-reserve/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	PlaceTitle string `json:"place_title"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Date       string `json:"order_date"`
	State      string `json:"order_state,omitempty"`
	UID        string `json:"uid"`
	Name       string `json:"order_name"`
	Phone      string `json:"order_phone"`
	CreateTime string `json:"create_time"`
}

type CellResponse struct {
	Slot   string         `json:"slot"`
	Status string         `json:"status"`
	Order  *OrderResponse `json:"order,omitempty"`
}

type RowResponse struct {
	Place string         `json:"place"`
	Cells []CellResponse `json:"cells"`
}

type FilterKey struct {
	Place string `json:"place"`
	Slot  string `json:"slot"`
}

type OccupancyResponse struct {
	VenueID int64           `json:"venue_id"`
	Date    string          `json:"date"`
	Weekday int             `json:"weekday"`
	NoSlots bool            `json:"no_slots"`
	Slots   []string        `json:"slots"`
	Rows    []RowResponse   `json:"rows"`
	Counts  map[string]int  `json:"counts"`
	Orders  []OrderResponse `json:"orders"`
}

type FilterResponse struct {
	VenueID int64           `json:"venue_id"`
	Date    string          `json:"date"`
	Filter  *FilterKey      `json:"filter"`
	Orders  []OrderResponse `json:"orders"`
}

func FromOrders(orders []order.Order) ([]OrderResponse, error) {
	out := make([]OrderResponse, 0, len(orders))
	if err := copier.Copy(&out, &orders); err != nil {
		return nil, err
	}
	return out, nil
}

func FromOccupancyView(v *queries.OccupancyView) (*OccupancyResponse, error) {
	orders, err := FromOrders(v.Orders)
	if err != nil {
		return nil, err
	}

	resp := &OccupancyResponse{
		VenueID: v.VenueID,
		Date:    v.Date,
		Weekday: v.Weekday,
		NoSlots: v.NoSlots,
		Slots:   v.Slots,
		Rows:    make([]RowResponse, 0, len(v.Rows)),
		Counts:  make(map[string]int, len(v.Counts)),
		Orders:  orders,
	}
	if resp.Slots == nil {
		resp.Slots = []string{}
	}
	for status, n := range v.Counts {
		resp.Counts[string(status)] = n
	}
	for _, row := range v.Rows {
		r := RowResponse{Place: row.Place, Cells: make([]CellResponse, 0, len(row.Cells))}
		for _, cell := range row.Cells {
			cr := CellResponse{Slot: cell.Slot, Status: string(cell.Status)}
			if cell.Order != nil {
				var o OrderResponse
				if err := copier.Copy(&o, cell.Order); err != nil {
					return nil, err
				}
				cr.Order = &o
			}
			r.Cells = append(r.Cells, cr)
		}
		resp.Rows = append(resp.Rows, r)
	}
	return resp, nil
}

func FromFilterView(v *queries.FilterView) (*FilterResponse, error) {
	orders, err := FromOrders(v.Orders)
	if err != nil {
		return nil, err
	}
	return &FilterResponse{
		VenueID: v.VenueID,
		Date:    v.Date,
		Filter:  fromCellKey(v.Filter),
		Orders:  orders,
	}, nil
}

func fromCellKey(k *occupancy.CellKey) *FilterKey {
	if k == nil {
		return nil
	}
	return &FilterKey{Place: k.Place, Slot: k.Slot}
}
