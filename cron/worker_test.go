package cron

import (
	"context"
	"testing"
	"time"

	sessionRepo "dayplanner/database/repository/session"
	"dayplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSweepSessions(t *testing.T) {
	ctx := context.Background()
	store := sessionRepo.NewMemoryScheduleStore()
	_, err := store.Update(ctx, "s1", func(current []models.Interval) ([]models.Interval, error) {
		return append(current, models.Interval{Start: 1, End: 2}), nil
	})
	require.NoError(t, err)

	// A negative ttl makes every session look idle.
	SweepSessions(ctx, store, -time.Second, zap.NewNop())

	events, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStartSessionSweeperRejectsBadSpec(t *testing.T) {
	_, err := StartSessionSweeper("every now and then", sessionRepo.NewMemoryScheduleStore(), time.Minute, zap.NewNop())
	assert.Error(t, err)
}

func TestStartSessionSweeper(t *testing.T) {
	c, err := StartSessionSweeper("@every 1h", sessionRepo.NewMemoryScheduleStore(), time.Minute, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
