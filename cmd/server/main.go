package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/SamriddhiRoy/Interview-Question-Generator/internal/adapters/http"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/attempts"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/config"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/core"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/evaluator"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/genai"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/generator"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
	}

	store, err := newAttemptStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init attempt store")
	}
	defer store.Close()

	ai := genai.NewClient(cfg.GenAI)
	if !ai.Available() {
		log.Warn().Msg("no upstream model key, serving from local banks")
	}

	api := &router.API{
		Cfg:      cfg,
		Reg:      core.NewRegistry(),
		Gen:      generator.NewService(ai),
		Eval:     evaluator.NewService(ai),
		Attempts: store,
	}

	r := router.SetupRouter(ctx, api)

	corsOpts := cors.Options{
		AllowedMethods:   []string{http.MethodHead, http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedOrigins:   []string{cfg.ClientOrigin},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	handler := cors.New(corsOpts).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Interview server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

func newAttemptStore(ctx context.Context, cfg *config.Config) (attempts.Store, error) {
	switch cfg.Attempts.Backend {
	case "redis":
		return attempts.NewRedisStore(ctx, cfg.Attempts)
	default:
		return attempts.NewMemoryStore(cfg.Attempts.TTL), nil
	}
}
