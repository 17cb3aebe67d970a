package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio-app/portfolio-backend/config"
	"github.com/devfolio-app/portfolio-backend/internal/bootstrap"
	"github.com/devfolio-app/portfolio-backend/internal/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
	}

	store := catalog.NewStore()
	loader := catalog.NewLoader(cfg.Catalog.Source, cfg.Catalog.FetchTimeout)

	// One-shot startup load. A failure is terminal for the snapshot: the
	// API serves the unable-to-load envelope and there is no automatic
	// retry (watch/refresh are explicit opt-ins).
	records, err := loader.Load(ctx)
	if err != nil {
		store.SetError(err)
		log.Printf("[catalog] load failed: %v", err)
	} else {
		store.SetRecords(records)
		log.Printf("[catalog] loaded %d records from %s", len(records), cfg.Catalog.Source)
	}

	if cfg.Catalog.Watch {
		if !loader.IsFile() {
			log.Printf("[catalog] CATALOG_WATCH ignored: source is not a file")
		} else {
			watcher, err := catalog.NewWatcher(loader, store, cfg.Catalog.WatchDebounce)
			if err != nil {
				log.Fatalf("catalog watcher: %v", err)
			}
			if err := watcher.Start(); err != nil {
				log.Fatalf("catalog watcher: %v", err)
			}
			defer watcher.Close()
		}
	}

	if cfg.Catalog.RefreshSchedule != "" {
		if loader.IsFile() {
			log.Printf("[catalog] CATALOG_REFRESH_SCHEDULE ignored: use CATALOG_WATCH for file sources")
		} else {
			refresher := catalog.NewRefresher(loader, store)
			if err := refresher.Start(cfg.Catalog.RefreshSchedule); err != nil {
				log.Fatalf("catalog refresher: %v", err)
			}
			defer refresher.Stop()
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,

		Store:    store,
		PageSize: cfg.Catalog.PageSize,

		ContactUpstreamURL: cfg.Contact.UpstreamURL,
		ContactTimeout:     cfg.Contact.Timeout,
		ContactRatePerMin:  cfg.Contact.RatePerMinute,
		ContactBurst:       cfg.Contact.Burst,
		ContactDupWindow:   cfg.Contact.DuplicateWindow,

		Redis: rdb,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
