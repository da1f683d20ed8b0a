package api

import (
	"net/http"

	reqdto "mrbs/internal/handler/dto/request"
	resdto "mrbs/internal/handler/dto/response"
	"mrbs/internal/handler/httperr"
	"mrbs/internal/handler/middleware"
	"mrbs/internal/handler/validation"
	"mrbs/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service usecase.BookingService
}

func NewBookingHandler(service usecase.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// @Summary Create booking
// @Description Book a room for a number of 30 minute periods
// @Tags bookings
// @Accept json
// @Produce json
// @Security SessionCookie
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreatedBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Reason(err), nil)
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), middleware.SessionID(c, req.SessionID), req.ToUseCase())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	middleware.SetUserID(c, created.UserID())
	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary List bookings for a day
// @Description Bookings starting inside the operating-day window of the given date (default today)
// @Tags bookings
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Reason(err), nil)
		return
	}

	views, err := h.service.ListBookingsForDay(c.Request.Context(), q.Date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
