//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"

	"mrbs/internal/handler/dto/request"
	resdto "mrbs/internal/handler/dto/response"
	"mrbs/tests/common/authtest"
	"mrbs/tests/common/dbtest"
	"mrbs/tests/common/httptest"
	"mrbs/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	roomsURL    = "/api/rooms"
	testDate    = "2030-03-10"
)

type bookingSuite struct {
	e2e.SharedSuite
	roomID  int64
	aliceID int64
	alice   string
	bob     string
	admin   string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.roomID = dbtest.RoomID(s.T(), s.DB, "Main Hall")
	s.aliceID, s.alice = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice", 1)
	_, s.bob = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "bob", 1)
	_, s.admin = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "mrbs_admin", 2)
}

func (s *bookingSuite) book(session string, roomID int64, start string, periods int, title string) (int, []byte) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
		SessionID:       session,
		RoomID:          roomID,
		StartTime:       start,
		DurationPeriods: periods,
		Title:           title,
	}, "")
	return w.Code, w.Body.Bytes()
}

func (s *bookingSuite) listDay(date string) []resdto.BookingResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?date="+date, nil, "")
	var res []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *bookingSuite) TestCreate() {
	s.Run("予約と一覧", func() {
		code, body := s.book(s.alice, s.roomID, testDate+" 10:00", 2, "Standup")
		s.Require().Equal(http.StatusCreated, code, string(body))

		code, body = s.book(s.bob, s.roomID, testDate+"T10:30:00+08:00", 1, "Sync")
		s.Equal(http.StatusConflict, code, string(body))
		s.Contains(string(body), "room is already booked")

		code, body = s.book(s.bob, s.roomID, testDate+"T11:00:00+08:00", 1, "Sync")
		s.Equal(http.StatusCreated, code, string(body), "adjacent slots do not overlap")

		day := s.listDay(testDate)
		s.Require().Len(day, 2)
		s.Equal("Standup", day[0].Title)
		s.Equal("Main Hall", day[0].RoomName)
		s.Equal(s.aliceID, day[0].UserID)
		s.Equal("Sync", day[1].Title)
	})

	s.Run("未認証は401", func() {
		code, _ := s.book("", s.roomID, testDate+" 10:00", 1, "x")
		s.Equal(http.StatusUnauthorized, code)
	})

	s.Run("入力エラーは400", func() {
		code, body := s.book(s.alice, s.roomID, "tomorrow", 1, "x")
		s.Equal(http.StatusBadRequest, code, string(body))

		code, body = s.book(s.alice, s.roomID, testDate+" 10:00", 0, "x")
		s.Equal(http.StatusBadRequest, code, string(body))

		code, body = s.book(s.alice, 999, testDate+" 10:00", 1, "x")
		s.Equal(http.StatusBadRequest, code, string(body))
		s.Contains(string(body), "room does not exist")

		code, body = s.book(s.alice, s.roomID, testDate+" 10:00", 1<<52+2, "x")
		s.Equal(http.StatusBadRequest, code, string(body))
		s.Contains(string(body), "at most 48 periods")
		s.Empty(s.listDay(testDate))
	})

	s.Run("同じユーザーの重複は409、管理者は除外", func() {
		annex := dbtest.RoomID(s.T(), s.DB, "Annex")

		code, _ := s.book(s.alice, s.roomID, testDate+" 14:00", 2, "A")
		s.Require().Equal(http.StatusCreated, code)
		code, body := s.book(s.alice, annex, testDate+" 14:30", 1, "B")
		s.Equal(http.StatusConflict, code)
		s.Contains(string(body), "you already have a booking")

		code, _ = s.book(s.admin, s.roomID, testDate+" 16:00", 2, "C")
		s.Require().Equal(http.StatusCreated, code)
		code, body = s.book(s.admin, annex, testDate+" 16:30", 1, "D")
		s.Equal(http.StatusCreated, code, string(body))
	})

	s.Run("日次上限は深夜を跨いで数える", func() {
		code, _ := s.book(s.alice, s.roomID, testDate+" 22:00", 4, "late")
		s.Require().Equal(http.StatusCreated, code)
		code, body := s.book(s.alice, s.roomID, "2030-03-11 00:30", 3, "later")
		s.Equal(http.StatusConflict, code, string(body))
		s.Contains(string(body), "daily booking quota exceeded")

		day := s.listDay(testDate)
		s.Len(day, 1)
	})

	s.Run("同時予約は一件だけ成功する", func() {
		var wg sync.WaitGroup
		codes := make([]int, 2)
		for i, session := range []string{s.alice, s.bob} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i], _ = s.book(session, s.roomID, testDate+" 09:00", 2, "race")
			}()
		}
		wg.Wait()

		s.ElementsMatch([]int{http.StatusCreated, http.StatusConflict}, codes)
		s.Len(s.listDay(testDate), 1)
	})
}

func (s *bookingSuite) TestList() {
	s.Run("空の日は空配列", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?date="+testDate, nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})

	s.Run("不正な日付は400", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?date=2030/03/10", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *bookingSuite) TestRooms() {
	s.Run("一覧と取得", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL, nil, "")
		var rooms []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rooms)
		s.Len(rooms, 2)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL+"/999", nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}
