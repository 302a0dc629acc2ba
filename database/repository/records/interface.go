package recordsRepo

import (
	"context"

	"dayplanner/models"
)

// AttemptRecordRepository stores the outcome of add-event submissions.
type AttemptRecordRepository interface {
	Create(ctx context.Context, record models.AttemptRecord) (string, error)
	// GetBySessionID returns a session's records, newest first, at most limit of them.
	GetBySessionID(ctx context.Context, sessionID string, limit int) ([]models.AttemptRecord, error)
}

// DefaultListLimit caps GetBySessionID when the caller passes a non-positive limit.
const DefaultListLimit = 50

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}

type noopRecordRepo struct{}

// NewNoopRecordRepo returns a repository that keeps nothing.
func NewNoopRecordRepo() AttemptRecordRepository {
	return noopRecordRepo{}
}

func (noopRecordRepo) Create(ctx context.Context, record models.AttemptRecord) (string, error) {
	return record.ID, nil
}

func (noopRecordRepo) GetBySessionID(ctx context.Context, sessionID string, limit int) ([]models.AttemptRecord, error) {
	return []models.AttemptRecord{}, nil
}
