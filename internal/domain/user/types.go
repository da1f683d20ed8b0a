package user

type Level int

const (
	LevelUser  Level = 1
	LevelAdmin Level = 2
)

func (l Level) IsValid() bool {
	switch l {
	case LevelUser, LevelAdmin:
		return true
	default:
		return false
	}
}

func (l Level) IsAdmin() bool {
	return l >= LevelAdmin
}

func NewLevel(v int) (Level, error) {
	level := Level(v)
	if !level.IsValid() {
		return 0, ErrInvalidLevel
	}
	return level, nil
}
