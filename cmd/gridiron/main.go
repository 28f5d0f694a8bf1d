package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/api/rest"
	"github.com/gridirondash/gridiron/internal/cache"
	"github.com/gridirondash/gridiron/internal/config"
	"github.com/gridirondash/gridiron/internal/logos"
	"github.com/gridirondash/gridiron/internal/model"
	"github.com/gridirondash/gridiron/internal/scheduler"
	"github.com/gridirondash/gridiron/internal/service"
	"github.com/gridirondash/gridiron/internal/upstream/cfbd"
	"github.com/gridirondash/gridiron/internal/upstream/espn"
)

const (
	serviceName    = "gridiron"
	serviceVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := newLogger(cfg)
	logger.WithFields(logrus.Fields{
		"service": serviceName,
		"version": serviceVersion,
		"env":     cfg.Env,
	}).Info("Starting football dashboard API")

	store := newCache(cfg, logger)

	espnClient := espn.NewClient(cfg.ESPNSiteBase, cfg.ESPNCoreBase, cfg.HTTPTimeout, logger)
	cfbdClient := cfbd.NewClient(cfg.CFBDBase, cfg.CFBDToken, cfg.HTTPTimeout, logger)
	logoTable := logos.Default()

	cfbService := service.NewCFB(cfbdClient, store, logoTable, logger)
	scoreboardService := service.NewScoreboard(espnClient, cfbService, store, logoTable, logger)
	gamesService := service.NewGames(espnClient, cfbService, store, logoTable, logger)

	sched := scheduler.NewOrchestrator(scoreboardService, &scheduler.Config{
		EnableWarmer: cfg.EnableWarmer,
		WarmSchedule: cfg.WarmSchedule,
		WarmTimeout:  cfg.HTTPTimeout * 2,
		Sports:       []model.Sport{model.SportNFL},
	}, logger)
	if err := sched.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start cache warmer")
	}

	restServer := rest.NewServer(cfg.Port, scoreboardService, gamesService, cfbService, cfg.CorsOrigins, logger)
	go func() {
		logger.WithField("port", cfg.Port).Info("REST API server listening")
		if err := restServer.Start(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("REST server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := restServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("REST server shutdown error")
	}

	logger.Info("Stopped")
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if cfg.LogFormat == "json" || cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// newCache selects the cache backend. Redis failures fall back to the
// in-process store so the dashboard keeps serving.
func newCache(cfg *config.Config, logger *logrus.Logger) cache.Cache {
	if cfg.CacheBackend != "redis" {
		return cache.NewMemory(cfg.CacheTTL)
	}

	redisCache, err := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL, logger)
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, using in-process cache")
		return cache.NewMemory(cfg.CacheTTL)
	}
	logger.Info("Connected to Redis")
	return redisCache
}
