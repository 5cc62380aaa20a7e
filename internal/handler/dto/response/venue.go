package response

import (
	"strconv"

	"gym-reserve/internal/usecase/queries"
	"gym-reserve/internal/usecase/session"

	"github.com/jinzhu/copier"
)

type VenueResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	CategoryTitle string   `json:"category_title"`
	Places        []string `json:"places"`
}

type DateResponse struct {
	Date    string `json:"date"`
	Weekday int    `json:"weekday"`
}

type RefreshResponse struct {
	Loaded []int64           `json:"loaded"`
	Failed map[string]string `json:"failed,omitempty"`
}

func FromVenueViews(views []queries.VenueView) ([]VenueResponse, error) {
	out := make([]VenueResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromDateViews(views []queries.DateView) ([]DateResponse, error) {
	out := make([]DateResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromLoadReport(r session.LoadReport) *RefreshResponse {
	resp := &RefreshResponse{Loaded: r.Loaded}
	if resp.Loaded == nil {
		resp.Loaded = []int64{}
	}
	if len(r.Failed) > 0 {
		resp.Failed = make(map[string]string, len(r.Failed))
		for id, err := range r.Failed {
			resp.Failed[strconv.FormatInt(id, 10)] = err.Error()
		}
	}
	return resp
}
