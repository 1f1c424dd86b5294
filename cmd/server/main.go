package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bancada/internal/alert"
	"bancada/internal/commons"
	"bancada/internal/config"
	"bancada/internal/infrastructure/logger"
	"bancada/internal/product"
	"bancada/internal/repair"
	"bancada/internal/server"
	"bancada/internal/store"
	"bancada/internal/supplier"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	shop := store.New(zapLogger.Named("store"), time.Now)
	if cfg.Seed.Enabled {
		if err := seedStore(shop, cfg.Seed); err != nil {
			zapLogger.Fatal("seeding store", zap.Error(err))
		}
	}

	router := server.NewRouter(
		product.NewModule(shop, zapLogger),
		supplier.NewModule(shop, zapLogger),
		repair.NewModule(shop, zapLogger),
		alert.NewModule(shop, zapLogger),
		zapLogger,
	)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func seedStore(shop *store.Store, cfg config.SeedConfig) error {
	now := time.Now()
	if cfg.File == "" {
		return shop.Seed(store.DefaultSeed(now))
	}

	seed, err := commons.LoadSeedFile(cfg.File, now)
	if err != nil {
		return err
	}
	return shop.Seed(seed)
}
