package components

import (
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewFrontDeskUseCase,
		usecase.NewAuthUseCase,
	),
)
