package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"course-compass/config"
	_ "course-compass/docs" // Swagger docs
	advisorUC "course-compass/internal/advisor/usecase"
	"course-compass/internal/agent/tools"
	"course-compass/internal/catalog"
	"course-compass/internal/chat/repository/memory"
	chatUC "course-compass/internal/chat/usecase"
	"course-compass/internal/httpserver"
	"course-compass/internal/ledger"
	"course-compass/internal/ledger/repository/csvfile"
	ledgerUC "course-compass/internal/ledger/usecase"
	"course-compass/internal/servicecontext"
	serviceContextUC "course-compass/internal/servicecontext/usecase"
	"course-compass/pkg/llmprovider"
	"course-compass/pkg/log"
)

// @title       AUB Compass API
// @description Course advising chat with lead and feedback logging.
// @version     1
// @host        localhost:7860
// @schemes     http
func main() {
	// 0. .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Failed to load .env: ", err)
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting AUB Compass...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	fs := afero.NewOsFs()

	// 3. Static context: regenerated on every start
	contextUC := serviceContextUC.New(fs, cfg.Storage.ProfileDir, logger)
	if err := contextUC.Generate(ctx, servicecontext.DefaultProfile(time.Now())); err != nil {
		logger.Errorf(ctx, "Failed to generate service profile: %v", err)
		os.Exit(1)
	}

	// 4. Ledger
	ledgerRepo := csvfile.New(fs, cfg.Storage.LogsDir)
	ledgerUseCase := ledgerUC.New(ledgerRepo, logger)
	if err := ledgerUseCase.EnsureInitialized(ctx); err != nil {
		logger.Errorf(ctx, "Failed to initialize ledger: %v", err)
		os.Exit(1)
	}

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		os.Exit(1)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM providers: %v (fallback: %t)", manager.Providers(), cfg.LLM.FallbackEnabled)

	// 6. Advisor and chat
	advisor := advisorUC.New(advisorUC.Config{
		Generator:   manager,
		Registry:    tools.NewRegistry(ledgerUseCase, logger),
		Context:     contextUC,
		Catalog:     catalog.Default(),
		Temperature: &cfg.Advisor.Temperature,
	}, logger)

	sessions := memory.New(memory.Config{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
	}, logger)
	chat := chatUC.New(sessions, advisor, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		WriteTimeout: llmprovider.CallTimeout(&cfg.LLM) + 10*time.Second,
		ChatUseCase:  chat,
		ReadyChecks: []httpserver.ReadyFunc{
			func(ctx context.Context) error {
				for _, name := range []string{ledger.StudentsFile, ledger.FeedbackFile} {
					if _, err := ledgerRepo.ReadAll(ctx, name); err != nil {
						return fmt.Errorf("ledger %s: %w", name, err)
					}
				}
				return nil
			},
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
