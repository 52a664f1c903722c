package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"  // Echo web framework handles the routing
	"github.com/redis/go-redis/v9" // Redis client shared by cache and rate limiter

	"github.com/iliyamo/skyscan-flight-api/internal/config"     // cache and rate limit configuration
	"github.com/iliyamo/skyscan-flight-api/internal/handler"    // handlers implementing the business logic
	"github.com/iliyamo/skyscan-flight-api/internal/middleware" // JWT auth, response cache and rate limiting
)

// RegisterRoutes registers the health check.  It carries no middleware
// so monitoring keeps working while Redis or MySQL are degraded.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterFlights registers the catalog and reference-data endpoints.
// These serve static documents, so successful GET responses are cached
// in Redis when a client is available.
func RegisterFlights(e *echo.Echo, f *handler.FlightHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.NewRedisCache(cacheCfg, rdb)

	e.GET("/flights", f.List, cached)
	// Search is a POST carrying the filter body; it bypasses the GET cache.
	e.POST("/flights/search", f.Search)
	e.GET("/airports", f.Airports, cached)
	e.GET("/airlines", f.Airlines, cached)
	e.GET("/services", f.Services, cached)
}

// RegisterBookings registers booking creation and the two lookups.
// Bookings are intentionally unauthenticated; the passenger email and
// the PNR act as retrieval keys.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler) {
	e.POST("/bookings", b.Create)
	e.GET("/bookings", b.ListByEmail)
	e.GET("/trip/:pnr", b.Trip)
}

// RegisterAuth registers registration and login, plus the protected
// profile endpoint guarded by the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}
