package request

type RoomURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}
