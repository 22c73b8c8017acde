package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	availabilityHandler *api.AvailabilityHandler,
	ratingHandler *api.RatingHandler,
	waitingListHandler *api.WaitingListHandler,
	adminHandler *api.AdminHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, availabilityHandler, ratingHandler, waitingListHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	availabilityHandler *api.AvailabilityHandler,
	ratingHandler *api.RatingHandler,
	waitingListHandler *api.WaitingListHandler,
	adminHandler *api.AdminHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "", Handler: availabilityHandler.List},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "/:customer_id", Handler: reservationHandler.Get},
			{Method: http.MethodDelete, Path: "/:customer_id", Handler: reservationHandler.Cancel},
		})

		addRoutes(apiGroup.Group("/ratings"), []route{
			{Method: http.MethodPost, Path: "", Handler: ratingHandler.Create},
		})

		addRoutes(apiGroup.Group("/waiting-list"), []route{
			{Method: http.MethodPost, Path: "", Handler: waitingListHandler.Join},
			{Method: http.MethodDelete, Path: "/:customer_id", Handler: waitingListHandler.Leave},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodGet, Path: "/bookings/pending", Handler: adminHandler.ListPending},
				{Method: http.MethodPost, Path: "/bookings/:customer_id/events", Handler: adminHandler.ApplyEvent},
				{Method: http.MethodDelete, Path: "/bookings/:customer_id", Handler: adminHandler.Remove},
				{Method: http.MethodGet, Path: "/ratings", Handler: ratingHandler.List},
				{Method: http.MethodGet, Path: "/waiting-list", Handler: adminHandler.WaitingList},
				{Method: http.MethodGet, Path: "/stats", Handler: adminHandler.Stats},
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
