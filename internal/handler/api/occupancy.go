package api

import (
	"net/http"
	"strconv"

	reqdto "gym-reserve/internal/handler/dto/request"
	resdto "gym-reserve/internal/handler/dto/response"
	"gym-reserve/internal/handler/httperr"
	"gym-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OccupancyHandler struct {
	q queries.OccupancyQueries
}

func NewOccupancyHandler(q queries.OccupancyQueries) *OccupancyHandler {
	return &OccupancyHandler{q: q}
}

// @Summary Get occupancy grid
// @Description Place by time-slot status grid for one venue and date, plus the order list
// @Tags occupancy
// @Produce json
// @Param venueId path int true "Venue ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param sort query string false "Sort keys, e.g. start_time,-create_time"
// @Param filter query string false "Column filter, e.g. place_title:4号,5号;start_time:19:00"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/venues/{venueId}/occupancy [get]
func (h *OccupancyHandler) GetOccupancy(c *gin.Context) {
	venueID, ok := venueIDParam(c)
	if !ok {
		return
	}
	var query reqdto.OccupancyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.q.Occupancy(c.Request.Context(), venueID, query.Date,
		queries.ListOptions{Sort: query.Sort, Filter: query.Filter})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromOccupancyView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Toggle order filter
// @Description Narrow the order list to one grid cell; the same cell again clears the filter
// @Tags occupancy
// @Accept json
// @Produce json
// @Param venueId path int true "Venue ID"
// @Param request body reqdto.FilterRequest true "Cell to toggle"
// @Success 200 {object} resdto.FilterResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/venues/{venueId}/occupancy/filter [post]
func (h *OccupancyHandler) ToggleFilter(c *gin.Context) {
	venueID, ok := venueIDParam(c)
	if !ok {
		return
	}
	var req reqdto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.q.ToggleFilter(c.Request.Context(), venueID, req.Date, req.Place, req.Slot,
		queries.ListOptions{Sort: req.Sort, Filter: req.Filter})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromFilterView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func venueIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("venueId"), 10, 64)
	if err != nil || id <= 0 {
		httperr.Abort(c, http.StatusBadRequest, err, httperr.ErrorBody{
			Message:  "Invalid venue id",
			Code:     "INVALID_REQUEST",
			Field:    "venueId",
			Expected: "positive integer",
		}, nil)
		return 0, false
	}
	return id, true
}
