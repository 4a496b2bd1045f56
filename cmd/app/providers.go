package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/support-qa/internal/domain/faq"
	"github.com/yanqian/support-qa/internal/infra/config"
	"github.com/yanqian/support-qa/internal/infra/kbsource"
	"github.com/yanqian/support-qa/internal/infra/metrics"
)

func provideFAQConfig(cfg *config.Config) faq.Config {
	w := cfg.FAQ.Weights
	return faq.Config{
		Weights: faq.Weights{
			KeywordSubstring: w.KeywordSubstring,
			PromptSubstring:  w.PromptSubstring,
			KeywordToken:     w.KeywordToken,
			PromptOverlap:    w.PromptOverlap,
			TokenSetMember:   w.TokenSetMember,
			LCS:              w.LCS,
			LengthDivisor:    w.LengthDivisor,
			LengthExponent:   w.LengthExponent,
		},
		MinConfidence: cfg.FAQ.MinConfidence,
		FallbackZh:    cfg.FAQ.FallbackZh,
		FallbackJa:    cfg.FAQ.FallbackJa,
	}
}

func provideCollector() *metrics.Collector {
	return metrics.NewCollector()
}

// provideKnowledgeBaseChain assembles the loading chain. Remote sources that
// cannot be initialized are left out rather than failing startup.
func provideKnowledgeBaseChain(cfg *config.Config, logger *slog.Logger) (*kbsource.Chain, func(), error) {
	kbCfg := cfg.KnowledgeBase
	var (
		sources []faq.Source
		closers []func()
	)

	if pool := providePostgresPool(kbCfg.Postgres, logger); pool != nil {
		src := kbsource.NewPostgresSource(pool, kbCfg.Postgres.Table)
		sources = append(sources, src)
		closers = append(closers, src.Close)
	}
	if client := provideValkeyClient(kbCfg.Valkey, logger); client != nil {
		src := kbsource.NewValkeySource(client, kbCfg.Valkey.Key)
		sources = append(sources, src)
		closers = append(closers, src.Close)
	}
	if obj := kbCfg.ObjectStorage; obj.Enabled {
		src, err := kbsource.NewObjectSource(obj.Endpoint, obj.AccessKey, obj.SecretKey, obj.Bucket, obj.Region, obj.Key)
		if err != nil {
			logger.Error("object storage source disabled", "error", err)
		} else {
			logger.Info("faq object storage source enabled", "bucket", obj.Bucket, "key", obj.Key)
			sources = append(sources, src)
		}
	}
	sources = append(sources,
		kbsource.NewDataDirSource(kbCfg.DataDir),
		kbsource.NewFileSource("bundled", kbCfg.BundledPath),
	)

	cleanup := func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}
	return kbsource.NewChain(logger, kbCfg.LoadTimeout, sources...), cleanup, nil
}

// provideKnowledgeBaseWatcher returns nil unless file watching is enabled.
func provideKnowledgeBaseWatcher(cfg *config.Config, logger *slog.Logger) (*kbsource.Watcher, func(), error) {
	kbCfg := cfg.KnowledgeBase
	if !kbCfg.Watch {
		return nil, func() {}, nil
	}
	var dataFile string
	if kbCfg.DataDir != "" {
		dataFile = filepath.Join(kbCfg.DataDir, kbsource.DataFileName)
	}
	watcher, err := kbsource.NewWatcher(logger, kbCfg.WatchDebounce, dataFile, kbCfg.BundledPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("faq knowledge base file watch enabled", "debounce", kbCfg.WatchDebounce.String())
	return watcher, func() { _ = watcher.Close() }, nil
}

// provideHolder performs the initial load so the first request already has a snapshot.
func provideHolder(chain *kbsource.Chain, collector *metrics.Collector, logger *slog.Logger) (*faq.Holder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	kb, source, err := chain.LoadKnowledgeBase(ctx)
	collector.ObserveReload(source, kb.Len(), err)
	if err != nil {
		return nil, err
	}
	logger.Info("faq knowledge base ready", "source", source, "entries", kb.Len())
	return faq.NewHolder(kb, source), nil
}

func providePostgresPool(cfg config.PostgresConfig, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		logger.Info("faq postgres dsn not set, skipping postgres source")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, skipping postgres source", "error", err)
		return nil
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, skipping postgres source", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, skipping postgres source", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("faq postgres source enabled", "table", cfg.Table)
	return pool
}

func provideValkeyClient(cfg config.ValkeyConfig, logger *slog.Logger) valkey.Client {
	if !cfg.Enabled {
		return nil
	}
	opt, err := buildValkeyOptions(cfg.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, skipping valkey source", "error", err)
		return nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, skipping valkey source", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, skipping valkey source", "error", err)
		client.Close()
		return nil
	}
	logger.Info("faq valkey source enabled", "addr", cfg.Addr, "key", cfg.Key)
	return client
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
