package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/cache"
	"github.com/tarihce/tarihce-engine/pkg/config"
	"github.com/tarihce/tarihce-engine/pkg/database"
	"github.com/tarihce/tarihce-engine/pkg/generator"
	"github.com/tarihce/tarihce-engine/pkg/handlers"
	"github.com/tarihce/tarihce-engine/pkg/llm"
	"github.com/tarihce/tarihce-engine/pkg/logging"
	"github.com/tarihce/tarihce-engine/pkg/middleware"
	"github.com/tarihce/tarihce-engine/pkg/repositories"
	"github.com/tarihce/tarihce-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.ConnectionString())),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.Strings("allowed_origins", cfg.AllowedOrigins))

	ctx := context.Background()

	// Migrations run over database/sql; the pgx pool serves requests.
	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("Failed to close migration connection", zap.Error(err))
	}

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// The cache is best-effort: a missing or unreachable Redis backend
	// reduces to a store that always misses.
	cacheStore := cache.NewNoopStore()
	redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
	switch {
	case err != nil:
		logger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
	case redisClient == nil:
		logger.Info("Redis not configured, caching disabled")
	default:
		cacheStore = cache.NewRedisStore(redisClient)
		logger.Info("Redis cache connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port))
	}

	llmClient, err := llm.NewFromConfig(&cfg.AI, logger)
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	logger.Info("Generation backend ready",
		zap.String("provider", llmClient.GetProvider()),
		zap.String("model", llmClient.GetModel()))

	historyService := services.NewHistoryService(
		repositories.NewCategoryRepository(db),
		repositories.NewSummaryRepository(db),
		repositories.NewDetailRepository(db),
		repositories.NewEventRepository(db),
		cacheStore,
		generator.NewService(llmClient, logger),
		logger,
	)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewHistoryHandler(historyService, logger).RegisterRoutes(mux)

	handler := middleware.CORS(cfg.AllowedOrigins)(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting tarihce-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds a production logger, or a development logger for
// local environments.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
