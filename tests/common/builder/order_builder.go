//go:build unit || e2e

package builder

import (
	"gym-reserve/internal/domain/order"
)

type OrderBuilder struct {
	Order order.Order
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Order: order.Order{
			VenueID:    DefaultVenueID,
			PlaceTitle: "4号",
			StartTime:  "19:00",
			EndTime:    "20:00",
			Date:       "2024-01-08",
			State:      "用户预约成功",
			UID:        "2021001",
			Name:       "张三",
			Phone:      "13800000000",
			CreateTime: "2024-01-04 08:00:00",
		},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) Build() order.Order {
	return b.Order
}

// Fluent builder methods
func (b *OrderBuilder) At(place, start, end string) *OrderBuilder {
	b.Order.PlaceTitle = place
	b.Order.StartTime = start
	b.Order.EndTime = end
	return b
}

func (b *OrderBuilder) WithUID(uid string) *OrderBuilder {
	b.Order.UID = uid
	return b
}

func (b *OrderBuilder) WithDate(date string) *OrderBuilder {
	b.Order.Date = date
	return b
}
