package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/generation"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/infra"
)

const (
	sweepInterval = 30 * time.Second
	staleMessage  = "Generation timed out."
)

// The reaper fails generations stuck in the processing state longer than the
// configured TTL, so a crashed request never leaves a spinner forever.
func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("reaper: db connection failed")
	}
	defer pool.Close()

	store := generation.NewStore(infra.NewSQLRunner(pool, logger))
	olderThan := fmt.Sprintf("%d seconds", int(cfg.ProcessingTTL.Seconds()))

	logger.Info().Str("older_than", olderThan).Msg("reaper: started")

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		ids, err := store.ReapStale(ctx, olderThan, staleMessage)
		switch {
		case err != nil:
			logger.Error().Err(err).Msg("reaper: sweep failed")
		case len(ids) > 0:
			logger.Info().Strs("generation_ids", ids).Msg("reaper: failed stale generations")
		}

		select {
		case <-ctx.Done():
			logger.Info().Msg("reaper: stopped")
			return
		case <-ticker.C:
		}
	}
}
