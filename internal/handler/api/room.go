package api

import (
	"net/http"

	reqdto "mrbs/internal/handler/dto/request"
	resdto "mrbs/internal/handler/dto/response"
	"mrbs/internal/handler/httperr"
	"mrbs/internal/handler/validation"
	"mrbs/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service usecase.BookingService
}

func NewRoomHandler(service usecase.BookingService) *RoomHandler {
	return &RoomHandler{service: service}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	var uri reqdto.RoomURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Reason(err), nil)
		return
	}

	view, err := h.service.GetRoom(c.Request.Context(), uri.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
