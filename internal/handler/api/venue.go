package api

import (
	"context"
	"net/http"

	resdto "gym-reserve/internal/handler/dto/response"
	"gym-reserve/internal/handler/httperr"
	"gym-reserve/internal/usecase/queries"
	"gym-reserve/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

type ScheduleRefresher interface {
	LoadSchedules(ctx context.Context) (session.LoadReport, error)
}

type VenueHandler struct {
	q         queries.OccupancyQueries
	refresher ScheduleRefresher
}

func NewVenueHandler(q queries.OccupancyQueries, refresher ScheduleRefresher) *VenueHandler {
	return &VenueHandler{q: q, refresher: refresher}
}

// @Summary List venues
// @Description List every venue whose schedule is loaded, with its places in natural order
// @Tags venues
// @Produce json
// @Success 200 {array} resdto.VenueResponse
// @Failure 503 {object} httperr.Response
// @Router /api/venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	views, err := h.q.Venues(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromVenueViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List bookable dates
// @Description Dates inside the booking window, in the venue's time zone
// @Tags venues
// @Produce json
// @Success 200 {array} resdto.DateResponse
// @Router /api/dates [get]
func (h *VenueHandler) ListDates(c *gin.Context) {
	resp, err := resdto.FromDateViews(h.q.BookableDates())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reload venue schedules
// @Description Fetch every configured venue again; failed venues keep their previous schedule
// @Tags venues
// @Produce json
// @Success 200 {object} resdto.RefreshResponse
// @Failure 503 {object} httperr.Response
// @Router /api/venues/refresh [post]
func (h *VenueHandler) Refresh(c *gin.Context) {
	report, err := h.refresher.LoadSchedules(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoadReport(report))
}
