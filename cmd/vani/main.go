package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lpernett/godotenv"
	"go.uber.org/zap"

	"github.com/vanihq/vani/internal/assist"
	"github.com/vanihq/vani/internal/brain"
	"github.com/vanihq/vani/internal/config"
	"github.com/vanihq/vani/internal/contextstore"
	"github.com/vanihq/vani/internal/desktop"
	"github.com/vanihq/vani/internal/httpapi"
	"github.com/vanihq/vani/internal/intent"
	"github.com/vanihq/vani/internal/language"
	"github.com/vanihq/vani/internal/memory"
	"github.com/vanihq/vani/internal/observability"
	"github.com/vanihq/vani/internal/visionmodel"
	"github.com/vanihq/vani/internal/websearch"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	if err := intent.ValidateTable(); err != nil {
		logger.Fatal("trigger table invalid", zap.Error(err))
	}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	ctx := context.Background()
	transcript, storeKind, err := memory.NewStore(ctx, memory.Config{
		DatabaseURL: cfg.DatabaseURL,
		RedisAddr:   cfg.RedisAddr,
	})
	if err != nil {
		logger.Fatal("transcript store init failed", zap.Error(err))
	}
	defer transcript.Close()
	logger.Info("transcript store ready", zap.String("backend", storeKind))

	assistantNames := map[language.Language]string{
		language.English:  cfg.AssistantName,
		language.Hindi:    cfg.AssistantNameHI,
		language.Gujarati: cfg.AssistantNameGU,
	}

	brainAdapter, err := brain.NewAdapter(brain.Config{
		Mode:          cfg.BrainMode,
		BaseURL:       cfg.OllamaBaseURL,
		Model:         cfg.OllamaTextModel,
		AssistantName: assistantNames,
	})
	if err != nil {
		logger.Fatal("brain adapter init failed", zap.Error(err))
	}

	describer, camera, err := visionmodel.New(visionmodel.Config{
		Mode:         cfg.VisionMode,
		BaseURL:      cfg.OllamaBaseURL,
		Model:        cfg.OllamaVisionModel,
		CameraDevice: cfg.CameraDevice,
	})
	if err != nil {
		logger.Fatal("vision model init failed", zap.Error(err))
	}

	searcher, knowledge, err := websearch.New(websearch.Config{
		Mode:       cfg.SearchMode,
		Timeout:    cfg.SearchTimeout,
		MaxResults: cfg.SearchMaxResults,
	})
	if err != nil {
		logger.Fatal("web search init failed", zap.Error(err))
	}

	controller, err := desktop.New(desktop.Config{
		Mode:           cfg.DesktopMode,
		ScreenshotDir:  cfg.ScreenshotDir,
		ScreenshotTool: cfg.ScreenshotTool,
	})
	if err != nil {
		logger.Fatal("desktop controller init failed", zap.Error(err))
	}

	store := contextstore.New(cfg.HistoryCapacity, cfg.VisionStaleTurns)
	dispatcher := assist.NewDispatcher(
		brainAdapter,
		describer, camera,
		searcher, knowledge,
		controller, store,
		assist.Config{
			AssistantName:  assistantNames,
			DefaultBrowser: cfg.DefaultBrowser,
			HistoryReplay:  cfg.HistoryReplay,
		},
		logger,
	)
	pipeline := assist.NewPipeline(dispatcher, transcript, metrics, logger)

	api := httpapi.New(cfg, pipeline, metrics)
	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: api.Router(),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		_ = httpServer.Close()
	}

	logger.Info("shutdown complete")
}
