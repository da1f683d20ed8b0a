package components

import (
	"mrbs/internal/handler"
	"mrbs/internal/handler/api"
	"mrbs/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		middleware.NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	room *api.RoomHandler,
	session *middleware.SessionMiddleware,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		Room:    room,
		Session: session,
	}
}
