//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"mrbs/internal/handler/api"
	resdto "mrbs/internal/handler/dto/response"
	"mrbs/internal/handler/middleware"
	"mrbs/internal/handler/validation"
	"mrbs/internal/pkg/config"
	"mrbs/internal/pkg/cookie"
	"mrbs/internal/pkg/errs"
	"mrbs/internal/usecase"
	"mrbs/tests/common/builder"
	"mrbs/tests/common/httptest"
	"mrbs/tests/common/testutil"
	usecasemock "mrbs/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockService *usecasemock.MockBookingService
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = usecasemock.NewMockBookingService(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockService, config.NewTestConfig())

	sessions := middleware.NewSessionMiddleware()
	g := s.router.Group("", sessions.CaptureSession())
	g.POST("/auth/login", s.handler.Login)
	g.POST("/auth/logout", s.handler.Logout)
	g.GET("/auth/me", sessions.RequireSession(), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildView()
	expectedSession := strings.Repeat("s", 43)

	s.Run("success: 200 OK with session id and cookie", func() {
		s.mockService.EXPECT().Login(gomock.Any(), reqBody.Username, reqBody.Password).
			Return(&usecase.LoginResult{SessionID: expectedSession, User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedSession, response.SessionID)
		s.Equal(returnUser.Username, response.Username)
		s.Equal(returnUser.DisplayName, response.DisplayName)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Equal(expectedSession, sessionCookie.Value)
		s.True(sessionCookie.HttpOnly)
	})

	s.Run("error: 401 for bad credentials", func() {
		s.mockService.EXPECT().Login(gomock.Any(), reqBody.Username, reqBody.Password).
			Return(nil, usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
		s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "username boundary OK (64 chars)", mutate: testutil.Field("username", strings.Repeat("a", 64)), expectCode: http.StatusOK},
			{name: "username boundary invalid (65 chars)", mutate: testutil.Field("username", strings.Repeat("a", 65)), expectCode: http.StatusBadRequest},
			{name: "missing field: username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					username, _ := requestMap["username"].(string)
					s.mockService.EXPECT().Login(gomock.Any(), username, reqBody.Password).
						Return(&usecase.LoginResult{SessionID: expectedSession, User: returnUser}, nil)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: field name reported as sent", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("username", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "username is required")
	})

	s.Run("error: 500 hides storage details", func() {
		s.mockService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Storage(errs.New("pool closed"), "failed to load user")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "pool closed")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("body session_id wins over bearer", func() {
		s.mockService.EXPECT().Logout(gomock.Any(), "from-body").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"session_id": "from-body"}, "from-header")
		s.Equal(http.StatusOK, rec.Code)

		cleared := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
		s.Less(cleared.MaxAge, 0)
	})

	s.Run("cookie session without body", func() {
		s.mockService.EXPECT().Logout(gomock.Any(), "from-cookie").Return(nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: "from-cookie"}}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("always 200 even when the service fails", func() {
		s.mockService.EXPECT().Logout(gomock.Any(), "").Return(errs.Storage(errs.New("down"), "failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().WithID(7).AsAdmin().BuildView()

	s.Run("success: returns current user", func() {
		s.mockService.EXPECT().CurrentUser(gomock.Any(), "token").Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.CurrentUserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7), response.ID)
		s.Equal(2, response.Level)
	})

	s.Run("error: 401 without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 401 for an expired session", func() {
		s.mockService.EXPECT().CurrentUser(gomock.Any(), "stale").Return(nil, usecase.ErrInvalidSession).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "stale")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}
