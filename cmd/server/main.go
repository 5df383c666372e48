package main // Entry point package

import (
	"context" // Context for startup-scoped operations
	"log"     // Logging library
	"time"    // Timestamps for outbound events

	"github.com/joho/godotenv"    // Loads .env files into the process environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/drivehub/vehicle-rental/internal/config"     // Internal config loader
	"github.com/drivehub/vehicle-rental/internal/database"   // MySQL connector
	"github.com/drivehub/vehicle-rental/internal/handler"    // HTTP handlers
	"github.com/drivehub/vehicle-rental/internal/middleware" // Cache and rate-limit middleware
	"github.com/drivehub/vehicle-rental/internal/model"      // Domain records
	"github.com/drivehub/vehicle-rental/internal/queue"      // RabbitMQ publisher and consumer
	"github.com/drivehub/vehicle-rental/internal/repository" // MySQL repositories
	"github.com/drivehub/vehicle-rental/internal/router"     // Route registration
	"github.com/drivehub/vehicle-rental/internal/service"    // Booking engine
	"github.com/drivehub/vehicle-rental/internal/store"      // Record-store contract + memory impl
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win
	cfg := config.Load()

	// Pick the record store backend.  MySQL is the default; the memory
	// driver serves local development and tests.
	var (
		vehicles store.VehicleStore
		bookings store.BookingStore
		audit    store.AuditStore
		auth     *handler.AuthHandler
	)
	switch cfg.StoreDriver {
	case "memory":
		mem := store.NewMemory()
		vehicles, bookings, audit = mem.Vehicles(), mem.Bookings(), mem.Audit()
		log.Printf("store: in-memory (no auth persistence; register per run)")
		// Auth still needs a database; without one the auth endpoints are
		// not registered and protected routes reject every token.
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql connect failed: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("schema setup failed: %v", err)
		}
		cancel()
		vehicles = repository.NewVehicleRepo(db)
		bookings = repository.NewBookingRepo(db)
		audit = repository.NewAuditRepo(db)
		auth = handler.NewAuthHandler(cfg, repository.NewAdminRepo(db), repository.NewTokenRepo(db))
	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	// Build the engine over the chosen store and forward lifecycle
	// events to the broker.  Publish failures are logged inside the
	// publisher and never fail the request.
	svc := service.New(vehicles, bookings, audit)
	svc.SetNotifier(func(ctx context.Context, action string, b *model.Booking) {
		_ = queue.PublishBookingEvent(ctx, queue.BookingEvent{
			Action:        action,
			BookingID:     b.ID,
			VehicleID:     b.VehicleID,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			BookingType:   b.BookingType,
			StartDate:     b.StartDate,
			EndDate:       b.EndDate,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			TotalCost:     b.TotalCost,
			Status:        b.Status,
			OccurredAt:    time.Now().UTC().Format(time.RFC3339),
		})
	})

	e := echo.New()

	// Redis backs the distributed rate limiter and the response cache.
	// Both degrade to no-ops when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e) // Health check
	if auth != nil {
		router.RegisterAuth(e, auth, cfg.JWTSecret)
	}
	router.RegisterAdmin(e,
		handler.NewBookingHandler(svc),
		handler.NewVehicleHandler(svc),
		handler.NewAuditHandler(svc),
		handler.NewListingHandler(svc),
		cfg.JWTSecret, cacheMW)

	// Background consumer appends booking events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
