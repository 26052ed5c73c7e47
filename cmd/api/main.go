package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/catalog"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/generation"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/http/handlers"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/http/httpapi"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra/credentials"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra/geoip"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/middleware"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/prompt"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/providers/genai"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	storagePath := cfg.StoragePath
	if !filepath.IsAbs(storagePath) {
		if abs, err := filepath.Abs(storagePath); err == nil {
			storagePath = abs
		}
	}
	files, err := storage.NewFileStore(storagePath, cfg.StorageBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure storage")
	}

	creds, err := credentials.NewStore(runner, cfg.EncryptionSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure credential store")
	}

	gemini := genai.NewClient(genai.Options{
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		AppBaseURL: cfg.AppBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.GenerationTimeout},
		Logger:     &logger,
	})

	store := generation.NewStore(runner)
	templates := catalog.Default()

	var countryLookup middleware.CountryLookup
	if resolver, err := geoip.NewResolver(cfg.GeoIPDBPath); err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		countryLookup = resolver.CountryCode
		if closer, ok := resolver.(io.Closer); ok {
			defer closer.Close()
		}
	}

	app := &handlers.App{
		Config:      cfg,
		Logger:      logger,
		SQL:         runner,
		Store:       store,
		Generations: generation.NewService(store, gemini, creds, files, logger),
		Catalog:     templates,
		Assembler:   prompt.NewAssembler(templates),
		Credentials: creds,
		Files:       files,
	}

	router := httpapi.NewRouter(app, countryLookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
