package sessionRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dayplanner/models"

	"github.com/go-redis/redis/v8"
)

const (
	sessionKeyPrefix = "dayplanner:schedule:"
	maxUpdateRetries = 5
)

type redisScheduleStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisScheduleStore returns a ScheduleStore shared by every server
// instance. Each session key expires after ttl without activity.
func NewRedisScheduleStore(client *redis.Client, ttl time.Duration) ScheduleStore {
	return &redisScheduleStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func decodeSchedule(data []byte) ([]models.Interval, error) {
	events := []models.Interval{}
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to decode session schedule: %w", err)
	}
	return events, nil
}

func (r *redisScheduleStore) Load(ctx context.Context, sessionID string) ([]models.Interval, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	key := sessionKey(sessionID)
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.Interval{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session schedule: %w", err)
	}
	// Reading counts as activity.
	if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to refresh session ttl: %w", err)
	}
	return decodeSchedule(data)
}

func (r *redisScheduleStore) Update(ctx context.Context, sessionID string, fn UpdateFunc) ([]models.Interval, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := sessionKey(sessionID)
	var result []models.Interval
	txf := func(tx *redis.Tx) error {
		current := []models.Interval{}
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			if current, err = decodeSchedule(data); err != nil {
				return err
			}
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = next
		return nil
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			// Another request changed the key first; read it again.
			continue
		}
		if err != nil {
			return nil, err
		}
		return append([]models.Interval{}, result...), nil
	}
	return nil, fmt.Errorf("session schedule update gave up after %d conflicts", maxUpdateRetries)
}

// Sweep is a no-op: Redis expires idle sessions through key TTLs.
func (r *redisScheduleStore) Sweep(ctx context.Context, idle time.Duration) (int, error) {
	return 0, nil
}
