package components

import (
	"context"

	"mrbs/internal/domain/booking"
	"mrbs/internal/pkg/clock"
	"mrbs/internal/pkg/config"
	"mrbs/internal/usecase"
	"mrbs/internal/usecase/commands"
	"mrbs/internal/usecase/queries"
	"mrbs/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseServicesModule,
	fx.Invoke(SeedDefaultAdmin),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, hours booking.OperatingHours) commands.BookingPolicy {
		return commands.BookingPolicy{
			Hours:      hours,
			DailyQuota: cfg.Booking.DailyQuota,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewBookingQueries,
	),
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		usecase.NewCredentialStore,
		NewSessionManager,
		usecase.NewAdminSeeder,
		usecase.NewBookingService,
	),
)

func NewSessionManager(uow shared.UnitOfWork, readStore queries.SessionReadStore, cfg config.Config, clk clock.Clock) usecase.SessionManager {
	return usecase.NewSessionManager(uow, readStore, cfg.Session.Lifetime, clk)
}

// SeedDefaultAdmin runs once at startup when ADMIN_DEFAULT_PASSWORD is set.
func SeedDefaultAdmin(lc fx.Lifecycle, seeder usecase.AdminSeeder, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := seeder.EnsureDefaultAdmin(ctx, cfg.Admin.DefaultPassword)
			return err
		},
	})
}
