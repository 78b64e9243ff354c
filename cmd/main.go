package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"mood-movie-recommender/internal/cache"
	"mood-movie-recommender/internal/config"
	"mood-movie-recommender/internal/database"
	"mood-movie-recommender/internal/handler"
	"mood-movie-recommender/internal/middleware"
	"mood-movie-recommender/internal/mood"
	"mood-movie-recommender/internal/movieapi"
	"mood-movie-recommender/internal/planner"
	"mood-movie-recommender/internal/service"
	"mood-movie-recommender/internal/youtube"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.RapidAPI.Key == "" {
		slog.Warn("RAPIDAPI_KEY not set, live search will fail and fallback data will be served")
	}

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, using in-process cache", "error", err)
		rdb = nil
	}

	// Search-result cache: Redis when reachable, in-process otherwise
	var store cache.Store
	if rdb != nil {
		store = cache.NewRedis(rdb, cfg.Cache.TTL)
	} else {
		store = cache.NewMemory(cfg.Cache.TTL)
	}

	// Initialize clients and pipeline layers
	searchClient := movieapi.NewClient(cfg.RapidAPI.Key, cfg.RapidAPI.MovieHost, cfg.RapidAPI.MovieBaseURL, store)
	trailerClient := youtube.NewClient(cfg.RapidAPI.Key, cfg.RapidAPI.YouTubeHost, cfg.RapidAPI.YouTubeSearchURL)
	svc := service.NewRecommendationService(mood.NewClassifier(), planner.New(), searchClient)
	h := handler.NewRecommendationHandler(svc, trailerClient)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Mood Movie Recommender",
		ServerHeader: "Mood-Movie-Recommender",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: "something went wrong, please try again"})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	if rdb != nil {
		app.Use(middleware.NewRateLimiter(rdb, cfg.RateLimit).Handler())
	}

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// API routes
	api := app.Group("/api/v1")
	api.Get("/health", h.Health)
	api.Get("/moods", h.ListMoods)
	api.Get("/trailer", h.Trailer)
	api.Post("/recommend", h.Recommend)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down recommender service...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting mood movie recommender", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
