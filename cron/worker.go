package cron

import (
	"context"
	"time"

	sessionRepo "dayplanner/database/repository/session"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SweepSessions drops sessions idle for longer than ttl once.
func SweepSessions(ctx context.Context, store sessionRepo.ScheduleStore, ttl time.Duration, logger *zap.Logger) {
	dropped, err := store.Sweep(ctx, ttl)
	if err != nil {
		logger.Error("Session sweep failed", zap.Error(err))
		return
	}
	if dropped > 0 {
		logger.Info("Swept idle sessions", zap.Int("dropped", dropped))
	}
}

// StartSessionSweeper runs SweepSessions on spec (e.g. "@every 1m"). The
// caller stops the returned scheduler on shutdown.
func StartSessionSweeper(spec string, store sessionRepo.ScheduleStore, ttl time.Duration, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		SweepSessions(ctx, store, ttl, logger)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("Session sweeper started", zap.String("spec", spec), zap.Duration("ttl", ttl))
	return c, nil
}
