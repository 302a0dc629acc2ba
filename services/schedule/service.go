package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dayplanner/models"
	"dayplanner/services/scheduler"

	"go.uber.org/zap"
)

// AddEvent validates candidate and adds it to the session's schedule. A
// rejection is returned as a *ScheduleError and leaves the schedule unchanged.
func (s *DefaultScheduleService) AddEvent(ctx context.Context, sessionID string, candidate models.Interval) (*models.ScheduleView, error) {
	logger := s.Logger.With(zap.String("session_id", sessionID), zap.Int("start", candidate.Start), zap.Int("end", candidate.End))

	if err := Validate(candidate); err != nil {
		s.record(ctx, sessionID, candidate, err)
		return nil, err
	}

	events, err := s.Store.Update(ctx, sessionID, func(current []models.Interval) ([]models.Interval, error) {
		sched, dropped := scheduler.Restore(current)
		if dropped > 0 {
			logger.Warn("Dropped invalid intervals from stored schedule", zap.Int("dropped", dropped))
		}
		if !sched.AddEvent(candidate) {
			return nil, ErrOverlap
		}
		return sched.GetEvents(), nil
	})

	var schedErr *ScheduleError
	if errors.As(err, &schedErr) {
		s.record(ctx, sessionID, candidate, err)
		logger.Debug("Event rejected", zap.String("code", schedErr.Code))
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	s.record(ctx, sessionID, candidate, nil)
	logger.Info("Event added", zap.Int("events", len(events)))

	view := BuildView(events)
	if s.Publisher != nil {
		s.Publisher.Publish(sessionID, view)
	}
	return view, nil
}

// GetSchedule returns the session's current schedule.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, sessionID string) (*models.ScheduleView, error) {
	events, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	sched, dropped := scheduler.Restore(events)
	if dropped > 0 {
		s.Logger.Warn("Dropped invalid intervals from stored schedule",
			zap.String("session_id", sessionID), zap.Int("dropped", dropped))
	}
	return BuildView(sched.GetEvents()), nil
}

func (s *DefaultScheduleService) GetAttempts(ctx context.Context, sessionID string, limit int) ([]models.AttemptRecord, error) {
	records, err := s.Records.GetBySessionID(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt records: %w", err)
	}
	return records, nil
}

// record stores the outcome of a submission. Failures are logged, never returned.
func (s *DefaultScheduleService) record(ctx context.Context, sessionID string, candidate models.Interval, rejection error) {
	rec := models.AttemptRecord{
		SessionID: sessionID,
		Start:     candidate.Start,
		End:       candidate.End,
		Accepted:  rejection == nil,
		CreatedAt: time.Now().UTC(),
	}
	var schedErr *ScheduleError
	if errors.As(rejection, &schedErr) {
		rec.Code = schedErr.Code
	}
	if _, err := s.Records.Create(ctx, rec); err != nil {
		s.Logger.Warn("Failed to record attempt", zap.String("session_id", sessionID), zap.Error(err))
	}
}
