package api

import (
	"net/http"

	reqdto "gym-reserve/internal/handler/dto/request"
	resdto "gym-reserve/internal/handler/dto/response"
	"gym-reserve/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book a slot
// @Description Resolve place and start time against the venue schedule and submit the order
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("X-Submission-ID", result.SubmissionID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
