//go:build unit

package order_test

import (
	"testing"

	"gym-reserve/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uids(orders []order.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.UID
	}
	return out
}

func TestParseSortKeys(t *testing.T) {
	t.Run("empty falls back to place then start", func(t *testing.T) {
		keys, err := order.ParseSortKeys(" ")
		require.NoError(t, err)
		assert.Equal(t, order.DefaultSort, keys)
	})

	t.Run("descending prefix", func(t *testing.T) {
		keys, err := order.ParseSortKeys("uid, -create_time")
		require.NoError(t, err)
		assert.Equal(t, []order.SortKey{
			{Column: order.ColumnUID},
			{Column: order.ColumnCreateTime, Desc: true},
		}, keys)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := order.ParseSortKeys("place_title,price")
		require.ErrorIs(t, err, order.ErrUnknownColumn)
		assert.Contains(t, err.Error(), `"price"`)
	})
}

func TestSort(t *testing.T) {
	t.Run("default sort orders places numerically then by start", func(t *testing.T) {
		orders := []order.Order{
			{UID: "a", PlaceTitle: "10号", StartTime: "19:00"},
			{UID: "b", PlaceTitle: "2号", StartTime: "20:00"},
			{UID: "c", PlaceTitle: "2号", StartTime: "9:00"},
		}
		order.Sort(orders, order.DefaultSort)
		assert.Equal(t, []string{"c", "b", "a"}, uids(orders))
	})

	t.Run("uid compares as a number", func(t *testing.T) {
		orders := []order.Order{{UID: "100"}, {UID: "20"}, {UID: "3"}}
		order.Sort(orders, []order.SortKey{{Column: order.ColumnUID}})
		assert.Equal(t, []string{"3", "20", "100"}, uids(orders))
	})

	t.Run("unparsable times sort first", func(t *testing.T) {
		orders := []order.Order{
			{UID: "late", CreateTime: "2024-01-05 10:00:00"},
			{UID: "bad", CreateTime: "yesterday"},
			{UID: "early", CreateTime: "2024-01-04 10:00:00"},
		}
		order.Sort(orders, []order.SortKey{{Column: order.ColumnCreateTime}})
		assert.Equal(t, []string{"bad", "early", "late"}, uids(orders))

		slots := []order.Order{{UID: "x", StartTime: "00:00"}, {UID: "bad", StartTime: "?"}}
		order.Sort(slots, []order.SortKey{{Column: order.ColumnStartTime}})
		assert.Equal(t, []string{"bad", "x"}, uids(slots))
	})

	t.Run("secondary key breaks ties and sort is stable", func(t *testing.T) {
		orders := []order.Order{
			{UID: "1", PlaceTitle: "4号", Name: "b"},
			{UID: "2", PlaceTitle: "5号", Name: "a"},
			{UID: "3", PlaceTitle: "4号", Name: "b"},
			{UID: "4", PlaceTitle: "4号", Name: "c"},
		}
		order.Sort(orders, []order.SortKey{{Column: order.ColumnPlaceTitle}, {Column: order.ColumnOrderName, Desc: true}})
		assert.Equal(t, []string{"4", "1", "3", "2"}, uids(orders))
	})
}

func TestNormalized(t *testing.T) {
	o := order.Order{PlaceTitle: "场地4号", StartTime: "19:00", EndTime: "20:00"}

	n := o.Normalized()
	assert.Equal(t, "4号", n.PlaceTitle)
	assert.Equal(t, "场地4号", o.PlaceTitle)
	assert.Equal(t, "19:00-20:00", n.SlotLabel())
}
