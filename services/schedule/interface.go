package schedule

import (
	"context"

	recordsRepo "dayplanner/database/repository/records"
	sessionRepo "dayplanner/database/repository/session"
	"dayplanner/models"

	"go.uber.org/zap"
)

// ScheduleService is what the HTTP layer calls to read and grow a session's schedule.
type ScheduleService interface {
	AddEvent(ctx context.Context, sessionID string, candidate models.Interval) (*models.ScheduleView, error)
	GetSchedule(ctx context.Context, sessionID string) (*models.ScheduleView, error)
	GetAttempts(ctx context.Context, sessionID string, limit int) ([]models.AttemptRecord, error)
}

// Publisher receives the new view of a session after every accepted event.
type Publisher interface {
	Publish(sessionID string, view *models.ScheduleView)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Store     sessionRepo.ScheduleStore
	Records   recordsRepo.AttemptRecordRepository
	Publisher Publisher
	Logger    *zap.Logger
}

// NewDefaultScheduleService wires a ScheduleService. records, publisher and
// logger may be nil.
func NewDefaultScheduleService(
	store sessionRepo.ScheduleStore,
	records recordsRepo.AttemptRecordRepository,
	publisher Publisher,
	logger *zap.Logger,
) *DefaultScheduleService {
	if records == nil {
		records = recordsRepo.NewNoopRecordRepo()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultScheduleService{
		Store:     store,
		Records:   records,
		Publisher: publisher,
		Logger:    logger,
	}
}
