package server

import (
	"context"
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"

	"rentwise-backend/internal/history"
	"rentwise-backend/internal/llm"
	"rentwise-backend/internal/llm/groq"
	"rentwise-backend/internal/predict"
	"rentwise-backend/internal/services/health"
	"rentwise-backend/internal/shared/config"
	"rentwise-backend/internal/shared/metrics"
	"rentwise-backend/internal/shared/server/middleware"
	"rentwise-backend/internal/shared/server/respond"
	"rentwise-backend/internal/shared/storage/db"
	"rentwise-backend/internal/suggest"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.NewRateLimiter(middleware.RateLimitRule{Rate: 5, Burst: 10})),
	)

	// Dependencies
	var llmClient llm.Client
	if cfg.GroqAPIKey != "" {
		client, err := groq.NewClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqTimeout)
		if err != nil {
			log.Printf("groq client unavailable: %v", err)
		} else {
			llmClient = client
		}
	}
	suggestSvc := suggest.NewService(
		llmClient,
		&suggest.Builder{Denylist: cfg.SuggestDenylist},
		cfg.SuggestRetryBackoff,
		cfg.SuggestFallbackMessage,
	)
	suggestHandler := suggest.NewHandler(suggestSvc)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else if err := db.RunMigrations(context.Background(), conn); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
		} else {
			sqlDB = conn
		}
	}
	var historyRepo history.Repo
	if sqlDB != nil {
		historyRepo = &history.PGRepo{DB: sqlDB}
	} else {
		historyRepo = history.NewMemoryRepo()
	}
	historyHandler := history.NewHandler(historyRepo)

	model, err := predict.LoadModel()
	if err != nil {
		log.Fatalf("load rent model: %v", err)
	}
	predictHandler := predict.NewHandler(model, historyRepo)

	healthSvc := health.NewService()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	suggestHandler.RegisterRoutes(api)
	predictHandler.RegisterRoutes(api)
	historyHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
