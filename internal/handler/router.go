package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk/internal/domain/staff"
	"frontdesk/internal/handler/api"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Stay        *api.StayHandler
	Service     *api.ServiceHandler
	Card        *api.CardHandler
	Report      *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/auth/login", h.Auth.Login)

		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireRole(staff.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.GetPendingReservations},
				{Method: http.MethodPatch, Path: "/reservations/:customerId", Handler: h.Reservation.UpdateReservation},
				{Method: http.MethodDelete, Path: "/reservations/:customerId", Handler: h.Reservation.DeleteReservation},

				{Method: http.MethodPost, Path: "/stays/:customerId/check-in", Handler: h.Stay.CheckIn},
				{Method: http.MethodPost, Path: "/stays/:customerId/check-out", Handler: h.Stay.CheckOut},
				{Method: http.MethodGet, Path: "/stays", Handler: h.Stay.GetCheckedInCustomers},

				{Method: http.MethodPost, Path: "/rooms/:roomNumber/services", Handler: h.Service.RequestService},

				{Method: http.MethodGet, Path: "/customers/:customerId/service-record", Handler: h.Report.GetServiceRecord},
				{Method: http.MethodGet, Path: "/reports/occupancy", Handler: h.Report.GetRoomOccupancy},

				{Method: http.MethodPost, Path: "/rooms/:roomNumber/cards", Handler: h.Card.AddCardToRoom},
				{Method: http.MethodGet, Path: "/rooms/:roomNumber/cards", Handler: h.Card.GetCardsForRoom},
				{Method: http.MethodDelete, Path: "/cards/:cardId", Handler: h.Card.DeleteCard},
				{Method: http.MethodPost, Path: "/cards/:cardId/activate", Handler: h.Card.ActivateCard},
				{Method: http.MethodPost, Path: "/cards/:cardId/deactivate", Handler: h.Card.DeactivateCard},
			})
		}

		providers := apiGroup.Group("")
		providers.Use(authMiddleware.RequireRole(staff.RoleHotelService, staff.RoleRoomSupport))
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "/services/pending", Handler: h.Service.GetPendingServices},
				{Method: http.MethodPost, Path: "/rooms/:roomNumber/services/complete", Handler: h.Service.CompleteService},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
