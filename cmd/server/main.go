package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/skyscan-flight-api/internal/booking"    // Booking store semantics
	"github.com/iliyamo/skyscan-flight-api/internal/catalog"    // Static document loader
	"github.com/iliyamo/skyscan-flight-api/internal/config"     // Environment config loaders
	"github.com/iliyamo/skyscan-flight-api/internal/database"   // MySQL connection helper
	"github.com/iliyamo/skyscan-flight-api/internal/handler"    // HTTP handlers
	"github.com/iliyamo/skyscan-flight-api/internal/middleware" // Rate limiting middleware
	"github.com/iliyamo/skyscan-flight-api/internal/queue"      // Booking event consumer
	"github.com/iliyamo/skyscan-flight-api/internal/repository" // MySQL repositories
	"github.com/iliyamo/skyscan-flight-api/internal/router"     // Route registration
	queue_publisher "github.com/iliyamo/skyscan-flight-api/internal/service"
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; a nil client turns cache and rate limiting
	// into pass-throughs.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)
	store := booking.NewStore(bookings)
	loader := catalog.NewLoader(cfg.DataDir)

	authH := handler.NewAuthHandler(cfg, users)
	flightH := handler.NewFlightHandler(loader)
	bookingH := handler.NewBookingHandler(store)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterFlights(e, flightH, config.LoadCacheConfig(), rdb)
	router.RegisterBookings(e, bookingH)
	router.RegisterAuth(e, authH, cfg.JWTSecret)

	// The consumer writes booking confirmations to logs/booking.log.
	// It only runs when a broker is configured.
	if url := queue_publisher.BrokerURL(); url != "" {
		go func() {
			if err := queue.StartBookingConsumer(url); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
