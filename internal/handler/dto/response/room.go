package response

import (
	"mrbs/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          int64  `json:"room_id"`
	DisplayName string `json:"display_name"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRoomViews(views []*queries.RoomView) ([]RoomResponse, error) {
	res := make([]RoomResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
