// Package scheduler warms the scoreboard caches so dashboard reads hit
// fresh data instead of paying the provider round trip.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/model"
	"github.com/gridirondash/gridiron/internal/service"
)

// Config holds scheduler configuration
type Config struct {
	EnableWarmer bool
	// Cron expression for the scoreboard warm cycle.
	WarmSchedule string
	// How long one warm cycle may run.
	WarmTimeout time.Duration
	// Sports to warm. Empty means NFL only.
	Sports []model.Sport
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		EnableWarmer: true,
		WarmSchedule: "@every 45s",
		WarmTimeout:  30 * time.Second,
		Sports:       []model.Sport{model.SportNFL},
	}
}

// Orchestrator runs the periodic cache warm jobs.
type Orchestrator struct {
	scoreboard *service.Scoreboard
	config     *Config
	cron       *cron.Cron
	log        *logrus.Entry
}

// NewOrchestrator creates a new scheduler orchestrator
func NewOrchestrator(scoreboard *service.Scoreboard, config *Config, logger *logrus.Logger) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Orchestrator{
		scoreboard: scoreboard,
		config:     config,
		cron:       cron.New(),
		log:        logger.WithField("component", "scheduler"),
	}
}

// Start registers the warm jobs and begins the cron loop. It returns
// immediately; use Stop to drain.
func (o *Orchestrator) Start() error {
	if !o.config.EnableWarmer {
		o.log.Info("Cache warmer disabled")
		return nil
	}

	_, err := o.cron.AddFunc(o.config.WarmSchedule, o.warmScoreboards)
	if err != nil {
		return err
	}

	o.log.WithField("schedule", o.config.WarmSchedule).Info("Cache warmer started")
	o.cron.Start()

	// Warm once at startup so the first dashboard load is already hot.
	go o.warmScoreboards()
	return nil
}

// Stop stops scheduling and waits for a running job to finish.
func (o *Orchestrator) Stop() {
	ctx := o.cron.Stop()
	<-ctx.Done()
	o.log.Info("Cache warmer stopped")
}

func (o *Orchestrator) warmScoreboards() {
	ctx, cancel := context.WithTimeout(context.Background(), o.config.WarmTimeout)
	defer cancel()

	sports := o.config.Sports
	if len(sports) == 0 {
		sports = []model.Sport{model.SportNFL}
	}

	for _, sport := range sports {
		start := time.Now()
		games, err := o.scoreboard.Games(ctx, sport, "", 0, "", "")
		if err != nil {
			o.log.WithError(err).WithField("sport", sport).Warn("Scoreboard warm failed")
			continue
		}
		o.log.WithFields(logrus.Fields{
			"sport":    sport,
			"games":    len(games),
			"duration": time.Since(start).String(),
		}).Debug("Scoreboard warmed")
	}
}
