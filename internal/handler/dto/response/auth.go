package response

import (
	"mrbs/internal/usecase"
	"mrbs/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	SessionID   string `json:"session_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

func FromLoginResult(r *usecase.LoginResult) *LoginResponse {
	return &LoginResponse{
		SessionID:   r.SessionID,
		Username:    r.User.Username,
		DisplayName: r.User.DisplayName,
	}
}

type CurrentUserResponse struct {
	ID          int64  `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Level       int    `json:"level"`
}

func FromUserView(v *queries.UserView) (*CurrentUserResponse, error) {
	var res CurrentUserResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
