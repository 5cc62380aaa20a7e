//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gym-reserve/internal/handler/api"
	resdto "gym-reserve/internal/handler/dto/response"
	"gym-reserve/internal/pkg/errs"
	"gym-reserve/internal/usecase/queries"
	"gym-reserve/internal/usecase/session"
	"gym-reserve/tests/common/httptest"
	apimock "gym-reserve/tests/mock/api"
	queriesmock "gym-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockQueries   *queriesmock.MockOccupancyQueries
	mockRefresher *apimock.MockScheduleRefresher
	handler       *api.VenueHandler
}

func (s *VenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOccupancyQueries(s.mockCtrl)
	s.mockRefresher = apimock.NewMockScheduleRefresher(s.mockCtrl)
	s.handler = api.NewVenueHandler(s.mockQueries, s.mockRefresher)

	s.router.GET("/api/venues", s.handler.ListVenues)
	s.router.GET("/api/dates", s.handler.ListDates)
	s.router.POST("/api/venues/refresh", s.handler.Refresh)
}

func (s *VenueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(VenueHandlerTestSuite))
}

func (s *VenueHandlerTestSuite) TestListVenues() {
	s.Run("success: returns venues with places", func() {
		s.mockQueries.EXPECT().Venues(gomock.Any()).Return([]queries.VenueView{
			{ID: 10001, Title: "东区体育馆", CategoryTitle: "羽毛球", Places: []string{"1号", "2号", "10号"}},
			{ID: 10029, Title: "西区体育馆", CategoryTitle: "乒乓球", Places: []string{"1号"}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/venues", nil)

		var body []resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(int64(10001), body[0].ID)
		s.Equal("羽毛球", body[0].CategoryTitle)
		s.Equal([]string{"1号", "2号", "10号"}, body[0].Places)
	})

	s.Run("error: 503 when nothing is loaded", func() {
		s.mockQueries.EXPECT().Venues(gomock.Any()).Return(nil, errs.ErrNoVenuesLoaded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/venues", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, "NO_VENUES")
	})
}

func (s *VenueHandlerTestSuite) TestListDates() {
	s.mockQueries.EXPECT().BookableDates().Return([]queries.DateView{
		{Date: "2024-01-08", Weekday: 1},
		{Date: "2024-01-09", Weekday: 2},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/dates", nil)

	var body []resdto.DateResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal([]resdto.DateResponse{{Date: "2024-01-08", Weekday: 1}, {Date: "2024-01-09", Weekday: 2}}, body)
}

func (s *VenueHandlerTestSuite) TestRefresh() {
	s.Run("success: reports loaded and failed venues", func() {
		s.mockRefresher.EXPECT().LoadSchedules(gomock.Any()).Return(session.LoadReport{
			Loaded: []int64{10001},
			Failed: map[int64]error{10029: errs.Wrap(errs.ErrBackendUnavailable, "venue 10029")},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/venues/refresh", nil)

		var body resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int64{10001}, body.Loaded)
		s.Contains(body.Failed, "10029")
	})

	s.Run("error: 503 when every venue failed", func() {
		s.mockRefresher.EXPECT().LoadSchedules(gomock.Any()).
			Return(session.LoadReport{Failed: map[int64]error{10001: errs.ErrBackendUnavailable}}, errs.ErrNoVenuesLoaded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/venues/refresh", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, "NO_VENUES")
	})
}
