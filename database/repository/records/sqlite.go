package recordsRepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dayplanner/models"

	"github.com/google/uuid"
)

const createAttemptsTable = `CREATE TABLE IF NOT EXISTS attempt_records (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	start_hour INTEGER NOT NULL,
	end_hour INTEGER NOT NULL,
	accepted INTEGER NOT NULL,
	code TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS attempt_records_session_idx ON attempt_records (session_id, created_at);`

type sqliteRecordRepo struct {
	db *sql.DB
}

// NewSQLiteRecordRepo returns an AttemptRecordRepository stored in db,
// creating its table when missing.
func NewSQLiteRecordRepo(db *sql.DB) (AttemptRecordRepository, error) {
	if _, err := db.Exec(createAttemptsTable); err != nil {
		return nil, fmt.Errorf("failed to create attempt_records table: %w", err)
	}
	return &sqliteRecordRepo{db: db}, nil
}

func (r *sqliteRecordRepo) Create(ctx context.Context, record models.AttemptRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempt_records (id, session_id, start_hour, end_hour, accepted, code, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.SessionID, record.Start, record.End, record.Accepted, record.Code, record.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *sqliteRecordRepo) GetBySessionID(ctx context.Context, sessionID string, limit int) ([]models.AttemptRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, start_hour, end_hour, accepted, code, created_at
		 FROM attempt_records WHERE session_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		sessionID, normalizeLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.AttemptRecord{}
	for rows.Next() {
		var rec models.AttemptRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Start, &rec.End, &rec.Accepted, &rec.Code, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
