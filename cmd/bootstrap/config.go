package bootstrap

import (
	"mrbs/internal/domain/booking"
	"mrbs/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewOperatingHours,
	),
)

func NewOperatingHours(cfg config.Config) (booking.OperatingHours, error) {
	return cfg.Booking.Hours()
}
