//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mrbs/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(configure func(r *http.Request)) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if configure != nil {
		configure(c.Request)
	}
	return c
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name      string
		configure func(r *http.Request)
		want      string
	}{
		{name: "no credentials", want: ""},
		{
			name:      "bearer header",
			configure: func(r *http.Request) { r.Header.Set("Authorization", "Bearer  abc ") },
			want:      "abc",
		},
		{
			name:      "other scheme ignored",
			configure: func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") },
			want:      "",
		},
		{
			name: "cookie wins over header",
			configure: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: "from-cookie"})
				r.Header.Set("Authorization", "Bearer from-header")
			},
			want: "from-cookie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractToken(newTestContext(tt.configure)))
		})
	}
}

func TestSessionID(t *testing.T) {
	c := newTestContext(func(r *http.Request) { r.Header.Set("Authorization", "Bearer captured") })
	NewSessionMiddleware().CaptureSession()(c)

	assert.Equal(t, "captured", SessionID(c, ""))
	assert.Equal(t, "captured", SessionID(c, "   "))
	assert.Equal(t, "explicit", SessionID(c, " explicit "))
}

func TestRequireSession(t *testing.T) {
	c := newTestContext(nil)
	NewSessionMiddleware().RequireSession()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, c.Writer.Status())
}

func TestUserID(t *testing.T) {
	c := newTestContext(nil)
	_, ok := GetUserID(c)
	assert.False(t, ok)

	SetUserID(c, 42)
	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestRequestIDFrom(t *testing.T) {
	c := newTestContext(func(r *http.Request) { r.Header.Set("X-Request-ID", "0b9e4c8e-3f43-4a53-9d3e-6a2a2b0d6f11") })
	assert.Equal(t, "0b9e4c8e-3f43-4a53-9d3e-6a2a2b0d6f11", requestIDFrom(c))

	c = newTestContext(func(r *http.Request) { r.Header.Set("X-Request-ID", "not a uuid") })
	assert.NotEqual(t, "not a uuid", requestIDFrom(c))
	assert.Len(t, requestIDFrom(c), 36)
}
