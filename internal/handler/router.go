package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"octo-connect/internal/handler/api"
	"octo-connect/internal/handler/middleware"
	"octo-connect/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	credentialHandler *api.CredentialHandler,
	productHandler *api.ProductHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, credentialHandler, productHandler, availabilityHandler, bookingHandler)
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
	credentialHandler *api.CredentialHandler,
	productHandler *api.ProductHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		credential := apiGroup.Group("/credential")
		{
			addRoutes(credential, []route{
				{Method: http.MethodGet, Path: "/template", Handler: credentialHandler.Template},
				{Method: http.MethodPost, Path: "/validate", Handler: credentialHandler.Validate},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/products/search", Handler: productHandler.Search},
			{Method: http.MethodPost, Path: "/quotes/search", Handler: productHandler.SearchQuote},
			{Method: http.MethodPost, Path: "/availability/search", Handler: availabilityHandler.Search},
			{Method: http.MethodPost, Path: "/availability/calendar", Handler: availabilityHandler.Calendar},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
			{Method: http.MethodDelete, Path: "/bookings", Handler: bookingHandler.Cancel},
			{Method: http.MethodPost, Path: "/bookings/search", Handler: bookingHandler.Search},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
