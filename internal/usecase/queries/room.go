package queries

import (
	"context"

	"mrbs/internal/infra"
	"mrbs/internal/pkg/errs"
)

var ErrRoomNotFound = errs.NewKind(errs.ErrNotFound, "room not found")

// RoomQueries is the room catalog. Rooms are reference data and never written here.
type RoomQueries interface {
	Get(ctx context.Context, roomID int64) (*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id int64) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) Get(ctx context.Context, roomID int64) (*RoomView, error) {
	room, err := q.readStore.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Storage(err, "failed to load room")
	}
	return room, nil
}

// ListAll returns rooms in id order.
func (q *roomQueriesImpl) ListAll(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Storage(err, "failed to list rooms")
	}
	return rooms, nil
}
