//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/handler/api"
	reqdto "gym-reserve/internal/handler/dto/request"
	resdto "gym-reserve/internal/handler/dto/response"
	"gym-reserve/internal/handler/middleware"
	"gym-reserve/internal/pkg/errs"
	"gym-reserve/internal/usecase/commands"
	"gym-reserve/tests/common/builder"
	"gym-reserve/tests/common/httptest"
	"gym-reserve/tests/common/testutil"
	commandsmock "gym-reserve/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/api/bookings", s.handler.Book)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestBook() {
	url := "/api/bookings"
	reqBody := builder.NewBookingBuilder().BuildRequestDTO()
	result := &commands.BookingResult{
		SubmissionID: uuid.New(),
		Payload: booking.Payload{
			UID:        reqBody.UID,
			PlaceTitle: "4号",
			StartTime:  "19:00",
			EndTime:    "20:00",
			OrderDate:  reqBody.Date,
			OrderState: booking.OrderStateSucceeded,
		},
	}

	s.Run("success: returns 201 Created with the submitted form", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), reqBody).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.SubmissionID.String(), body.SubmissionID)
		s.Equal("4号", body.Form.PlaceTitle)
		s.Equal(booking.OrderStateSucceeded, body.Form.OrderState)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Submission-ID": result.SubmissionID.String()})
	})

	s.Run("success: name and phone are optional", func() {
		anonymous := builder.NewBookingBuilder().WithoutIdentity().BuildRequestDTO()
		s.mockCommands.EXPECT().Book(gomock.Any(), anonymous).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, anonymous)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []struct {
			field string
		}{
			{field: "venueId"},
			{field: "date"},
			{field: "place"},
			{field: "startTime"},
			{field: "uid"},
		}
		for _, tc := range cases {
			s.Run("missing "+tc.field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				body := httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
				s.Equal("non-empty value", body.Expected)
			})
		}
	})

	s.Run("error: 400 Bad Request on non-positive venue id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("venueId", -1))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: slot errors carry field and expected format", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
			field  string
		}{
			{
				name:   "unknown place",
				err:    &booking.SlotError{Kind: booking.KindUnknownPlace, Field: "place", Input: "9", Expected: "one of 1号, 4号"},
				status: http.StatusUnprocessableEntity,
				code:   "UNKNOWN_PLACE",
				field:  "place",
			},
			{
				name:   "bad start time",
				err:    &booking.SlotError{Kind: booking.KindBadTime, Field: "start_time", Input: "7pm", Expected: "HH:MM, 24-hour"},
				status: http.StatusBadRequest,
				code:   "BAD_TIME",
				field:  "start_time",
			},
			{
				name:   "no such slot",
				err:    &booking.SlotError{Kind: booking.KindNoSuchSlot, Field: "start_time", Input: "18:00", Expected: "one of 19:00"},
				status: http.StatusUnprocessableEntity,
				code:   "NO_SUCH_SLOT",
				field:  "start_time",
			},
			{
				name:   "held by the venue",
				err:    &booking.SlotError{Kind: booking.KindSlotReserved, Field: "start_time", Input: "20:00", Expected: "one of 19:00"},
				status: http.StatusConflict,
				code:   "SLOT_RESERVED",
				field:  "start_time",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				body := httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
				s.Equal(tc.field, body.Field)
				s.NotEmpty(body.Expected)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "unknown venue", err: errs.Wrapf(errs.ErrVenueNotFound, "venue %d", 1), status: http.StatusNotFound, code: "VENUE_NOT_FOUND"},
			{name: "date outside window", err: errs.Wrap(errs.ErrDateOutOfWindow, "2024-02-01"), status: http.StatusBadRequest, code: "DATE_OUT_OF_WINDOW"},
			{name: "backend rejected", err: errs.Wrap(errs.ErrBookingRejected, "slot taken"), status: http.StatusConflict, code: "BOOKING_REJECTED"},
			{name: "backend unreachable", err: errs.Wrap(errs.ErrBackendUnavailable, "dial tcp"), status: http.StatusBadGateway, code: "BACKEND_UNAVAILABLE"},
			{name: "shutting down", err: errs.ErrCoordinatorStopped, status: http.StatusServiceUnavailable, code: "SHUTTING_DOWN"},
			{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})

	s.Run("request reaches the command unnormalized", func() {
		fullWidth := builder.NewBookingBuilder().With(func(r *reqdto.BookingRequest) {
			r.StartTime = "19：00"
		}).BuildRequestDTO()
		s.mockCommands.EXPECT().Book(gomock.Any(), fullWidth).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, fullWidth)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})
}
