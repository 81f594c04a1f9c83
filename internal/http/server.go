// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wasalny/internal/config"
	"wasalny/internal/http/handlers"
	"wasalny/internal/http/middleware"
	"wasalny/internal/modules/booking"
	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
)

type ServerDeps struct {
	Catalog  *catalog.Catalog
	Pricing  *pricing.Service
	Booking  booking.Deps
	Location *time.Location
	HTTP     config.HTTPConfig
	Logger   *zap.Logger
}

type Server struct {
	deps   ServerDeps
	logger *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{deps: deps, logger: logger.Named("http")}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(s.logger),
		middleware.Logging(s.logger),
		middleware.CORS(s.deps.HTTP.AllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(s.deps.HTTP.RateLimit, s.deps.HTTP.RateBurst, s.logger))

	catalogHandler := handlers.NewCatalogHandler(s.deps.Catalog, s.deps.Pricing.Strategy().Network())
	api.GET("/catalog/locations", catalogHandler.Locations)
	api.GET("/catalog/vehicles", catalogHandler.Vehicles)
	api.GET("/catalog/services", catalogHandler.Services)
	api.GET("/routes/destinations", catalogHandler.Destinations)

	quoteHandler := handlers.NewQuoteHandler(s.deps.Pricing, s.deps.Catalog.Settings(), s.deps.Location)
	api.POST("/quotes", quoteHandler.Create)

	bookingHandler := handlers.NewBookingHandler(s.deps.Booking)
	api.POST("/booking/sessions", bookingHandler.Create)
	api.GET("/booking/sessions/:id", bookingHandler.Get)
	api.POST("/booking/sessions/:id/events", bookingHandler.Dispatch)

	return r
}
