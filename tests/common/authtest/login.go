//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"mrbs/internal/handler/dto/request"
	resdto "mrbs/internal/handler/dto/response"
	"mrbs/internal/pkg/cookie"
	"mrbs/tests/common/dbtest"
	"mrbs/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser returns the session id from the body after checking the cookie carries the same value.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.SessionID)

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not set")
	require.Equal(t, res.SessionID, sessionCookie.Value)

	return res.SessionID
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string, level int) (int64, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, username, username, level)
	return userID, LoginUser(t, router, username, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func SessionCookie(sessionID string) []*http.Cookie {
	return []*http.Cookie{{Name: cookie.SessionCookieName, Value: sessionID}}
}
