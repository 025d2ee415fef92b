package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avkozlov/analyzer-backend/internal/api"
	analysisapi "github.com/avkozlov/analyzer-backend/internal/api/analysis"
	"github.com/avkozlov/analyzer-backend/internal/config"
	"github.com/avkozlov/analyzer-backend/internal/integration/provider"
	"github.com/avkozlov/analyzer-backend/internal/pkg/validator"
	"github.com/avkozlov/analyzer-backend/internal/usecase/analysis"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("model_provider", cfg.ProviderCfg.Name),
		zap.String("model", cfg.ProviderCfg.Model()),
	)

	// Initialize the model connector
	var model analysis.ModelConnector
	switch {
	case cfg.EnableMocks:
		logger.Info("Using mock model connector")
		model = provider.NewMockConnector(logger)
	case cfg.ProviderCfg.Name == config.ProviderAnthropic:
		logger.Info("Using Anthropic model connector")
		model = provider.NewAnthropicConnector(cfg.ProviderCfg, logger)
	default:
		logger.Info("Using OpenAI model connector")
		model = provider.NewOpenAIConnector(cfg.ProviderCfg, logger)
	}

	// Initialize validators
	requestValidator := validator.New(cfg.LimitsCfg)

	// Initialize use cases
	analysisUC := analysis.NewUsecase(model, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	analysisHandler := analysisapi.NewHandler(analysisUC, requestValidator)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(analysisHandler, api.HealthInfo{
		Model:  cfg.ProviderCfg.Model(),
		Agents: []string{"solution-generator", "criteria-analyzer"},
	}, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 320 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
