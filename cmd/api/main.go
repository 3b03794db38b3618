package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"learning-activity-agent/config"
	_ "learning-activity-agent/docs" // Swagger docs
	"learning-activity-agent/internal/activity/repository/service"
	"learning-activity-agent/internal/activity/repository/sqlite"
	agentHTTP "learning-activity-agent/internal/agent/delivery/http"
	"learning-activity-agent/internal/agent/dispatcher"
	conversationHTTP "learning-activity-agent/internal/conversation/delivery/http"
	"learning-activity-agent/internal/conversation/memory"
	evaluationUC "learning-activity-agent/internal/evaluation/usecase"
	"learning-activity-agent/internal/extractor"
	"learning-activity-agent/internal/gateway"
	"learning-activity-agent/internal/httpserver"
	"learning-activity-agent/internal/middleware"
	"learning-activity-agent/internal/resolver"
	"learning-activity-agent/internal/router"
	"learning-activity-agent/pkg/llmprovider"
	"learning-activity-agent/pkg/log"
	"learning-activity-agent/pkg/retry"
)

// @title       Learning Activity Agent API
// @description Conversational agent that routes learner requests to learning activities: start, create, edit, delete, list and evaluate.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Learning Activity Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Activity service: %s", cfg.ActivityService.URL)

	// 3. LLM providers
	retryDelay, retryMaxDelay, maxTotal, err := cfg.LLM.Durations()
	if err != nil {
		logger.Error(ctx, "Invalid LLM config: ", err)
		return
	}
	policy := retry.DefaultPolicy()
	if cfg.LLM.RetryAttempts > 0 {
		policy.MaxAttempts = cfg.LLM.RetryAttempts
	}
	if retryDelay > 0 {
		policy.InitialDelay = retryDelay
	}
	if retryMaxDelay > 0 {
		policy.MaxDelay = retryMaxDelay
	}
	if cfg.LLM.BackoffFactor > 0 {
		policy.BackoffFactor = cfg.LLM.BackoffFactor
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		Retry:           policy,
		MaxTotalTimeout: maxTotal,
	}, logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	// 4. Activity catalog (SQLite)
	catalog, err := sqlite.New(cfg.Catalog.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open activity catalog: ", err)
		return
	}
	defer catalog.Close()

	if cfg.Catalog.SeedFile != "" {
		if err := seedCatalog(ctx, catalog, cfg.Catalog.SeedFile); err != nil {
			logger.Warnf(ctx, "Catalog seed skipped: %v", err)
		}
	}

	// 5. Pipeline
	llm := gateway.New(manager, cfg.Agent.LLMTimeout, logger)
	store := memory.New()
	activityClient := service.NewClient(cfg.ActivityService.URL, cfg.ActivityService.Timeout, retry.DefaultPolicy(), logger)

	agent := dispatcher.New(dispatcher.Deps{
		Router:        router.New(llm, cfg.Agent.SpellCheck, logger),
		Extractor:     extractor.New(llm, logger),
		Resolver:      resolver.New(cfg.Agent.MatchThreshold),
		Store:         store,
		CRUD:          activityClient,
		Catalog:       catalog,
		Categories:    catalog,
		Evaluator:     evaluationUC.New(llm, logger),
		CatalogWriter: catalog,
	}, dispatcher.Config{
		MaxFollowUpDepth: cfg.Agent.MaxFollowUpDepth,
		HistoryWindow:    cfg.Agent.HistoryWindow,
	}, logger)

	// 6. HTTP delivery
	agentHandler := agentHTTP.New(logger, agent)
	conversationHandler := conversationHTTP.New(logger, store, manager)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit.PerMin),
		Domains: []httpserver.DomainHandler{
			func(api *gin.RouterGroup, mw middleware.Middleware) {
				agentHTTP.RegisterRoutes(api, agentHandler, mw)
			},
			func(api *gin.RouterGroup, mw middleware.Middleware) {
				conversationHTTP.RegisterRoutes(api, conversationHandler, mw)
			},
		},
		Readiness: []httpserver.Pinger{catalog},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func seedCatalog(ctx context.Context, catalog *sqlite.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = catalog.Import(ctx, f)
	return err
}
