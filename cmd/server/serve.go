package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"anoa.com/casetrack/internal/bootstrap"
	"anoa.com/casetrack/internal/entity"
	searchService "anoa.com/casetrack/internal/modules/search/service"
	"anoa.com/casetrack/internal/server"
	"github.com/meilisearch/meilisearch-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log := a.cfg, a.log

	db, err := a.connect()
	if err != nil {
		return err
	}
	if err := bootstrap.Migrate(db); err != nil {
		return err
	}
	if cfg.SeedAdminEmail != "" {
		if _, err := bootstrap.EnsureUser(db, log, cfg.SeedAdminEmail, cfg.SeedAdminPassword, entity.RoleAdmin); err != nil {
			return err
		}
	}

	rdb := a.newRedis(ctx)
	if rdb != nil {
		defer rdb.Close()
	}

	var index searchService.ParticipantIndex
	if cfg.MeiliSearchHost != "" {
		index = a.newIndex()
		log.Info("participant search index enabled", zap.String("host", cfg.MeiliSearchHost))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := server.New(server.Options{
		Config:   cfg,
		DB:       db,
		Logger:   log,
		Redis:    rdb,
		Search:   index,
		Registry: registry,
	})
	httpServer := srv.HTTPServer(net.JoinHostPort("", cfg.Port))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", httpServer.Addr), zap.String("env", cfg.AppEnv))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newRedis returns nil when REDIS_URL is unset or unreachable; callers degrade without it.
func (a *app) newRedis(ctx context.Context) *redis.Client {
	cfg, log := a.cfg, a.log
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, continuing without redis", zap.Error(err))
		return nil
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unreachable, continuing without redis", zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	return rdb
}

func (a *app) newIndex() searchService.ParticipantIndex {
	client := meilisearch.New(a.cfg.MeiliSearchHost, meilisearch.WithAPIKey(a.cfg.MeiliMasterKey))
	return searchService.NewMeiliSearchService(client, a.log)
}
