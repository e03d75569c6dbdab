package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-wristbands/internal/config"
	"github.com/iliyamo/event-wristbands/internal/database"
	"github.com/iliyamo/event-wristbands/internal/handler"
	"github.com/iliyamo/event-wristbands/internal/middleware"
	"github.com/iliyamo/event-wristbands/internal/queue"
	"github.com/iliyamo/event-wristbands/internal/repository"
	"github.com/iliyamo/event-wristbands/internal/router"
	"github.com/iliyamo/event-wristbands/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	wristbandRepo := repository.NewWristbandRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)
	principalRepo := repository.NewPrincipalRepo(db)

	transition := service.NewTransition(wristbandRepo, analyticsRepo, service.PublishAnalyticsReconcile)
	offers := service.NewOffers(wristbandRepo)

	// Redis is optional: when it is down the gate resolves uncached and the
	// limiter waves requests through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; principal cache and rate limiting disabled")
	}
	gate := middleware.NewPrincipalCache(principalRepo, rdb, 30*time.Second)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Background reconciler keeps the analytics projection converging on
	// wristband status after failed best-effort propagations.
	go func() {
		if err := queue.StartReconcileConsumer(analyticsRepo); err != nil {
			log.Printf("reconciler stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, db, handler.NewOffersHandler(offers))
	router.RegisterWristbands(e,
		handler.NewWristbandHandler(transition, wristbandRepo),
		handler.NewAnalyticsHandler(analyticsRepo),
		gate, cfg.JWTSecret, limiter,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
