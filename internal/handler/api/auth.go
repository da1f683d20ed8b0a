package api

import (
	"net/http"

	reqdto "mrbs/internal/handler/dto/request"
	resdto "mrbs/internal/handler/dto/response"
	"mrbs/internal/handler/httperr"
	"mrbs/internal/handler/middleware"
	"mrbs/internal/handler/validation"
	"mrbs/internal/pkg/config"
	"mrbs/internal/pkg/cookie"
	"mrbs/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service usecase.BookingService
	cfg     config.Config
}

func NewAuthHandler(service usecase.BookingService, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		service: service,
		cfg:     cfg,
	}
}

// @Summary User login
// @Description Login with username and password. Sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Reason(err), nil)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	middleware.SetUserID(c, result.User.ID)
	cookie.SetSessionCookie(c, h.cfg.Cookie, result.SessionID, h.cfg.Session.Lifetime)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary User logout
// @Description Revoke the session given in the body, cookie or bearer header. Always succeeds.
// @Tags auth
// @Accept json
// @Param request body reqdto.LogoutRequest false "Logout request"
// @Success 200 "OK"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req reqdto.LogoutRequest
	// an empty or malformed body still logs out the cookie session
	_ = c.ShouldBindJSON(&req)

	_ = h.service.Logout(c.Request.Context(), middleware.SessionID(c, req.SessionID))

	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusOK)
}

// @Summary Get current user
// @Description Get the user bound to the current session
// @Tags auth
// @Security SessionCookie
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CurrentUserResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	view, err := h.service.CurrentUser(c.Request.Context(), middleware.SessionID(c, ""))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	middleware.SetUserID(c, view.ID)
	res, err := resdto.FromUserView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
