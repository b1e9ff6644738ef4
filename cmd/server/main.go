package main // Entry point package

import (
	"context" // context bounds the audit schema bootstrap
	"log"     // Logging library
	"time"    // timeouts for startup work

	"github.com/joho/godotenv" // loads a local .env file in development
	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/ai"
	"github.com/fahrudins/school-lab-booking/internal/audit"
	"github.com/fahrudins/school-lab-booking/internal/config"
	"github.com/fahrudins/school-lab-booking/internal/database"
	"github.com/fahrudins/school-lab-booking/internal/handler"
	"github.com/fahrudins/school-lab-booking/internal/middleware"
	"github.com/fahrudins/school-lab-booking/internal/queue"
	"github.com/fahrudins/school-lab-booking/internal/router"
	"github.com/fahrudins/school-lab-booking/internal/store"
)

func main() {
	// Load .env if present; in production the variables come from the
	// environment and the file is absent.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// All booking, account and session state lives in this in-memory store.
	// A restart starts from the seed data again.
	st := store.New()
	if err := st.Seed(cfg.BcryptCost); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// The AI collaborator is optional: without GEMINI_API_KEY the analyze
	// endpoint still runs the local checker and auto-fill returns empty.
	gemini := ai.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !gemini.Enabled() {
		log.Println("GEMINI_API_KEY not set; AI analysis and auto-fill disabled")
	}

	// Optional write-only audit trail for booking decisions.  Failures here
	// disable the trail but never stop the service.
	var trail *audit.Trail
	if cfg.AuditDSNConfigured() {
		db, err := database.Open(cfg.AuditDBUser, cfg.AuditDBPass, cfg.AuditDBHost, cfg.AuditDBPort, cfg.AuditDBName)
		if err != nil {
			log.Printf("audit db unavailable, continuing without trail: %v", err)
		} else {
			trail = audit.New(db)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := trail.EnsureSchema(ctx); err != nil {
				log.Printf("audit schema bootstrap failed, continuing without trail: %v", err)
				trail = nil
			}
			cancel()
		}
	}

	// Consume decision events and append them to the notification log.  The
	// consumer reconnects on its own; a missing broker only costs the log.
	go func() {
		if err := queue.StartDecisionConsumer(); err != nil {
			log.Printf("decision consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance

	// Redis-backed token bucket and response cache.  Both degrade to no-ops
	// when Redis is not configured.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	authH := handler.NewAuthHandler(cfg, st)
	bookingH := handler.NewBookingHandler(st, gemini, trail)
	scheduleH := handler.NewScheduleHandler(st, gemini)
	browseH := handler.NewBrowseHandler(st)
	exportH := handler.NewExportHandler(st)
	accountH := handler.NewAccountHandler(cfg, st)

	router.RegisterRoutes(e) // Register application routes
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, browseH, scheduleH, bookingH, exportH)
	router.RegisterBookings(e, bookingH, cfg.JWTSecret)
	router.RegisterAdmin(e, bookingH, scheduleH, accountH, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
