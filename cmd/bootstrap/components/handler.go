package components

import (
	"frontdesk/internal/handler"
	"frontdesk/internal/handler/api"
	"frontdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewStayHandler,
		api.NewServiceHandler,
		api.NewCardHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	stay *api.StayHandler,
	service *api.ServiceHandler,
	card *api.CardHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Stay:        stay,
		Service:     service,
		Card:        card,
		Report:      report,
	}
}

