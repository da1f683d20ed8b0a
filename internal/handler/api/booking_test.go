//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"mrbs/internal/handler/api"
	resdto "mrbs/internal/handler/dto/response"
	"mrbs/internal/handler/middleware"
	"mrbs/internal/handler/validation"
	"mrbs/internal/pkg/errs"
	"mrbs/internal/usecase"
	"mrbs/internal/usecase/commands"
	"mrbs/internal/usecase/queries"
	"mrbs/tests/common/builder"
	"mrbs/tests/common/httptest"
	"mrbs/tests/common/testutil"
	usecasemock "mrbs/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockService *usecasemock.MockBookingService
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = usecasemock.NewMockBookingService(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockService)

	g := s.router.Group("", middleware.NewSessionMiddleware().CaptureSession())
	g.POST("/bookings", s.handler.Create)
	g.GET("/bookings", s.handler.List)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder().WithDescription("daily")
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: 201 Created", func() {
		s.mockService.EXPECT().CreateBooking(gomock.Any(), "tok", b.BuildRequest()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildDTO("tok"), "")

		var response resdto.CreatedBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID(), response.ID)
		s.Equal("Standup", response.Title)
		s.True(response.EndTime.Equal(b.EndTime()))
		s.Require().NotNil(response.Description)
		s.Equal("daily", *response.Description)
	})

	s.Run("bearer token is used when the body has none", func() {
		s.mockService.EXPECT().CreateBooking(gomock.Any(), "bearer-tok", b.BuildRequest()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildDTO(""), "bearer-tok")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseBooking{
			{name: "missing room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest, expectInBody: "room_id is required"},
			{name: "room_id zero", mutate: testutil.Field("room_id", 0), expectCode: http.StatusBadRequest, expectInBody: "room_id"},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest, expectInBody: "start_time is required"},
			{name: "room_id wrong type", mutate: testutil.Field("room_id", "one"), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), b.BuildDTO("tok"), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: service outcomes map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "no session", err: usecase.ErrInvalidSession, expectCode: http.StatusUnauthorized, expectMsg: "Authentication required"},
			{name: "domain validation", err: errs.Validation("duration_periods must be at least 1"), expectCode: http.StatusBadRequest, expectMsg: "duration_periods must be at least 1"},
			{name: "room conflict", err: commands.ErrRoomAlreadyBooked, expectCode: http.StatusConflict, expectMsg: "room is already booked"},
			{name: "user conflict", err: commands.ErrUserBusy, expectCode: http.StatusConflict, expectMsg: "you already have a booking"},
			{name: "quota", err: commands.ErrDailyQuotaExceeded, expectCode: http.StatusConflict, expectMsg: "daily booking quota exceeded"},
			{name: "unknown room", err: queries.ErrRoomNotFound, expectCode: http.StatusNotFound, expectMsg: "room not found"},
			{name: "storage", err: errs.Storage(errs.New("boom"), "failed"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockService.EXPECT().CreateBooking(gomock.Any(), "tok", gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildDTO("tok"), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	standup := builder.NewBookingBuilder().BuildView("Main Hall", "alice")

	s.Run("success: explicit date", func() {
		s.mockService.EXPECT().ListBookingsForDay(gomock.Any(), "2024-03-10").
			Return([]*queries.BookingView{standup}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=2024-03-10", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Main Hall", response[0].RoomName)
		s.Equal("alice", response[0].BookedBy)
		s.Nil(response[0].Description)
	})

	s.Run("success: no date means today and an empty day is an empty array", func() {
		s.mockService.EXPECT().ListBookingsForDay(gomock.Any(), "").Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=10-03-2024", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	})
}
