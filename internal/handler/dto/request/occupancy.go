package request

type OccupancyQuery struct {
	Date   string `form:"date" binding:"required,ymd"`
	Sort   string `form:"sort"`
	Filter string `form:"filter"`
}

type FilterRequest struct {
	Date   string `json:"date" binding:"required,ymd"`
	Place  string `json:"place" binding:"required"`
	Slot   string `json:"slot" binding:"required,slotlabel"`
	Sort   string `json:"sort,omitempty"`
	Filter string `json:"filter,omitempty"`
}
