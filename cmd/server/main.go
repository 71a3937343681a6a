package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/lumina-dev/venue-reserve/internal/ai"
	"github.com/lumina-dev/venue-reserve/internal/config"
	"github.com/lumina-dev/venue-reserve/internal/handler"
	"github.com/lumina-dev/venue-reserve/internal/middleware"
	"github.com/lumina-dev/venue-reserve/internal/queue"
	"github.com/lumina-dev/venue-reserve/internal/repository"
	"github.com/lumina-dev/venue-reserve/internal/router"
	"github.com/lumina-dev/venue-reserve/internal/service"
)

// chatIdleTTL controls how long an inactive advisor chat session is kept
// before the hub sweeps it.
const chatIdleTTL = 30 * time.Minute

func main() {
	_ = godotenv.Load() // load .env if present; real env still wins
	cfg := config.Load()

	rdb, err := config.NewRedisClient()
	if err != nil {
		log.Fatalf("redis connect failed: %v", err)
	}

	// Persistence: the four site records behind the key-value gateway,
	// plus the refresh-token store.
	store := repository.NewRedisStore(rdb)
	authRepo := repository.NewAuthRepo(store)
	configRepo := repository.NewConfigRepo(store)
	reservationRepo := repository.NewReservationRepo(store)
	statsRepo := repository.NewStatsRepo(store)
	tokenRepo := repository.NewTokenRepo(rdb)

	// Workflows.
	sessions := service.NewSessionService(cfg, authRepo, tokenRepo)
	reservations := service.NewReservationService(reservationRepo, queue.NewPublisher())

	// Gemini-backed AI tools.
	gen, err := ai.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini client failed: %v", err)
	}
	hub := ai.NewHub(chatIdleTTL)

	// Background consumer appending reservation confirmations to the log.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e,
		handler.NewSiteHandler(configRepo, statsRepo, reservations),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	)
	router.RegisterAdmin(e,
		handler.NewAuthHandler(sessions),
		handler.NewAdminHandler(configRepo, statsRepo, reservations),
		handler.NewToolsHandler(gen, hub),
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
