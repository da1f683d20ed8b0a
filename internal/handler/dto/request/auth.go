package request

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}

// LogoutRequest may be empty; the cookie or bearer token is used instead.
type LogoutRequest struct {
	SessionID string `json:"session_id"`
}
