package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fujiya-taiken/line-ai-bridge/internal/ai"
	"github.com/fujiya-taiken/line-ai-bridge/internal/config"
	"github.com/fujiya-taiken/line-ai-bridge/internal/line"
	"github.com/fujiya-taiken/line-ai-bridge/internal/storeinfo"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	// --- Static catalog (read-only after startup) ---
	info := storeinfo.Load(cfg.Server.StoreInfoPath, logger)
	logger.Info("menu loaded", zap.String("menu", info.MenuDescriptions()))

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Line-Signature"},
	}))

	// --- LINE module wiring ---
	aiClient := ai.NewOpenAIClient(cfg.OpenAI, logger)
	outbound := line.NewLineOutbound(cfg.Line.AccessToken)
	svc := line.NewService(aiClient, outbound, line.BuildSystemPrompt(info), logger)
	handler := line.NewHandler(svc, cfg.Line.ChannelSecret, logger)

	line.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("LINE Bot server is running!"))
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	// Inbound requests were already acked; let in-flight event pipelines
	// finish before the process exits.
	handler.Wait()
}
