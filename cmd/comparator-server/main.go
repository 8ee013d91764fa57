// cmd/comparator-server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"college-comparator/internal/api"
	"college-comparator/internal/cache"
	"college-comparator/internal/catalog"
	"college-comparator/internal/common/config"
	"college-comparator/internal/common/database"
	"college-comparator/internal/common/logger"
	"college-comparator/internal/common/metrics"
	"college-comparator/internal/comparator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger config is unavailable before Load succeeds.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting college comparator", map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"catalog":     cfg.Catalog.Source,
	})

	loader, cleanup, err := buildLoader(cfg, log)
	if err != nil {
		log.Error("failed to initialize catalog loader", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	defer cleanup()

	store := catalog.NewStore()
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	records, err := loader.Load(startupCtx)
	cancelStartup()
	if err != nil {
		log.Error("failed to load catalog", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	store.Swap(records)
	metrics.CatalogSize.Set(float64(len(records)))
	log.Info("catalog ready", map[string]interface{}{"colleges": len(records)})

	var comparisonCache *cache.ComparisonCache
	if cfg.Cache.Enabled {
		redisClient, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			log.Error("failed to connect to redis", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(pingCtx)
		cancelPing()
		if err != nil {
			// Cache is an optimization; a dead redis does not block startup.
			log.Warn("redis unreachable, running without comparison cache", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			comparisonCache = cache.NewComparisonCache(redisClient, config.GetDuration(cfg.Cache.TTL), log)
		}
	}

	service := comparator.NewService(store, log)
	server := api.NewServer(cfg.Server, service, store, loader, comparisonCache, log)

	httpServer := &http.Server{
		Addr:              cfg.Server.BindAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout:      config.GetDuration(cfg.Server.WriteTimeout),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("http server listening", map[string]interface{}{"addr": cfg.Server.BindAddr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}

// buildLoader picks the catalog source. The cleanup func closes whatever
// connection the loader holds; for CSV it is a no-op.
func buildLoader(cfg *config.Config, log logger.Logger) (api.Loader, func(), error) {
	switch cfg.Catalog.Source {
	case "postgres":
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, nil, err
		}
		loader := catalog.NewPostgresLoader(pg.GetDB(), cfg.Catalog.Table, log)
		return loader, func() { pg.Close() }, nil
	default:
		loader := catalog.NewCSVLoader(cfg.Catalog.CSVPath, log)
		return loader, func() {}, nil
	}
}
