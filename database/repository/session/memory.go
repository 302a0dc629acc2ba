package sessionRepo

import (
	"context"
	"sync"
	"time"

	"dayplanner/models"
)

type memoryEntry struct {
	mu       sync.Mutex
	events   []models.Interval
	lastSeen time.Time
}

type memoryScheduleStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	now      func() time.Time
}

// NewMemoryScheduleStore returns a ScheduleStore kept in process memory.
func NewMemoryScheduleStore() ScheduleStore {
	return newMemoryScheduleStore(time.Now)
}

func newMemoryScheduleStore(now func() time.Time) *memoryScheduleStore {
	return &memoryScheduleStore{
		sessions: make(map[string]*memoryEntry),
		now:      now,
	}
}

// entry returns the session's entry, creating it when create is set.
func (s *memoryScheduleStore) entry(sessionID string, create bool) *memoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok && create {
		e = &memoryEntry{events: []models.Interval{}}
		s.sessions[sessionID] = e
	}
	if e != nil {
		e.lastSeen = s.now()
	}
	return e
}

func (s *memoryScheduleStore) Load(ctx context.Context, sessionID string) ([]models.Interval, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	e := s.entry(sessionID, false)
	if e == nil {
		return []models.Interval{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Interval{}, e.events...), nil
}

func (s *memoryScheduleStore) Update(ctx context.Context, sessionID string, fn UpdateFunc) ([]models.Interval, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	e := s.entry(sessionID, true)
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := fn(append([]models.Interval{}, e.events...))
	if err != nil {
		return nil, err
	}
	e.events = append([]models.Interval{}, next...)
	return append([]models.Interval{}, e.events...), nil
}

func (s *memoryScheduleStore) Sweep(ctx context.Context, idle time.Duration) (int, error) {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped, nil
}
