package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Rooms        *api.RoomHandler
	Reservations *api.ReservationHandler
	Subscribers  *api.SubscriberHandler
	Guests       *api.GuestHandler
	Analytics    *api.AnalyticsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Rooms.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Rooms.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Rooms.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Rooms.Availability},
			{Method: http.MethodGet, Path: "/:id/similar", Handler: h.Rooms.Similar},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservations.ListByRoom},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Rooms.ListAvailable},
			{Method: http.MethodGet, Path: "/occupancy", Handler: h.Analytics.Occupancy},
			{Method: http.MethodGet, Path: "/insights", Handler: h.Analytics.Insights},
		})

		addRoutes(apiGroup.Group("/promotions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Analytics.Promotions},
			{Method: http.MethodPost, Path: "/launch", Handler: h.Analytics.LaunchPromotion},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Book},
			{Method: http.MethodGet, Path: "", Handler: h.Reservations.ListByGuest},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Cancel},
		})

		addRoutes(apiGroup.Group("/subscribers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Subscribers.Subscribe},
			{Method: http.MethodGet, Path: "", Handler: h.Subscribers.List},
			{Method: http.MethodPost, Path: "/unsubscribe", Handler: h.Subscribers.Unsubscribe},
		})

		addRoutes(apiGroup.Group("/guests/:guest"), []route{
			{Method: http.MethodGet, Path: "/loyalty", Handler: h.Guests.Loyalty},
			{Method: http.MethodGet, Path: "/recommendations", Handler: h.Guests.Recommendations},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
