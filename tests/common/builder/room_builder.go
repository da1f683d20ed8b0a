//go:build unit || e2e

package builder

import (
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/usecase/queries"
)

type RoomBuilder struct {
	ID          int64
	DisplayName string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{ID: 1, DisplayName: "Main Hall"}
}

func (r *RoomBuilder) BuildInfra() sqlc.Rooms {
	return sqlc.Rooms{ID: r.ID, DisplayName: r.DisplayName}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{ID: r.ID, DisplayName: r.DisplayName}
}

func (r *RoomBuilder) WithID(id int64) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithDisplayName(name string) *RoomBuilder {
	r.DisplayName = name
	return r
}
