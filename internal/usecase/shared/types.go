package shared

import "mrbs/internal/domain/user"

// Write-side snapshots keep commands independent of the read models.
type RoomSnapshot struct {
	ID          int64
	DisplayName string
}

type UserSnapshot struct {
	ID       int64
	Username string
	Level    user.Level
}
