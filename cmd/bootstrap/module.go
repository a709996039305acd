package bootstrap

import (
	"frontdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	StoreModule,
	LedgerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
