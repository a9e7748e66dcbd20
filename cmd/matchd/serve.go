package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/config"
	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/logger"
	"github.com/jonathan/opportunity-matcher/internal/scoring"
	"github.com/jonathan/opportunity-matcher/internal/server"
	"github.com/jonathan/opportunity-matcher/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommendation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pg, err := store.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	var cache store.CacheStore = pg
	var redisCache *store.RedisCache
	if cfg.Cache.Backend == config.CacheBackendRedis {
		redisCache, err = store.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			pg.Close()
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		cache = redisCache
	}

	var client llm.Client
	if cfg.AI.Enabled {
		llmCfg := llm.DefaultConfig()
		if cfg.AI.Model != "" {
			llmCfg = llmCfg.WithModel(llm.TierLite, cfg.AI.Model)
		}
		client, err = llm.NewClient(ctx, llmCfg, cfg.AI.APIKey)
		if err != nil {
			pg.Close()
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		log.Info("AI skill matching enabled", zap.String("model", client.GetModel(llm.TierLite)))
	} else {
		log.Info("AI skill matching disabled, using deterministic fallback")
	}

	matcher := scoring.NewSkillMatcher(client, cfg.AI.Timeout(), log)
	engine := scoring.NewEngine(pg, pg, cache, matcher, log, cfg.AI.Concurrency)

	closeFn := func() {
		if client != nil {
			_ = client.Close()
		}
		if redisCache != nil {
			_ = redisCache.Close()
		}
		pg.Close()
	}

	srv := server.New(server.Config{Port: cfg.Server.Port}, engine, log, closeFn)
	return srv.Start()
}
