package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

const defaultRedisPrefix = "interview"

var _ repositories.SessionRepository = (*RedisSessionRepository)(nil)

// RedisSessionRepository stores session snapshots as JSON with a TTL and keeps a
// per-user set of session ids for history lookups
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisSessionRepository creates a redis repository. A zero ttl disables expiry.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration, prefix string) *RedisSessionRepository {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisSessionRepository{client: client, ttl: ttl, prefix: prefix}
}

// Save persists the session and updates the user index in one round trip
func (r *RedisSessionRepository) Save(ctx context.Context, session *entities.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session id is required")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.sessionKey(session.ID), data, r.ttl)
	if session.UserID != "" {
		indexKey := r.userIndexKey(session.UserID)
		pipe.SAdd(ctx, indexKey, session.ID)
		if r.ttl > 0 {
			pipe.Expire(ctx, indexKey, r.ttl)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: redis pipeline failed: %w", usecaseErrors.ErrCache, err)
	}
	return nil
}

// Load finds a session by ID
func (r *RedisSessionRepository) Load(ctx context.Context, id string) (*entities.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecaseErrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: redis get failed: %w", usecaseErrors.ErrCache, err)
	}

	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// ListByUser finds all sessions for a user, newest first. Ids whose session expired are
// dropped from the index.
func (r *RedisSessionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Session, error) {
	indexKey := r.userIndexKey(userID)
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: redis smembers failed: %w", usecaseErrors.ErrCache, err)
	}

	sessions := make([]*entities.Session, 0, len(ids))
	var stale []interface{}
	for _, id := range ids {
		session, err := r.Load(ctx, id)
		if errors.Is(err, usecaseErrors.ErrSessionNotFound) {
			stale = append(stale, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, indexKey, stale...).Err(); err != nil {
			return nil, fmt.Errorf("%w: redis srem failed: %w", usecaseErrors.ErrCache, err)
		}
	}

	sortNewestFirst(sessions)
	return sessions, nil
}

func (r *RedisSessionRepository) sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", r.prefix, id)
}

func (r *RedisSessionRepository) userIndexKey(userID string) string {
	return fmt.Sprintf("%s:user:%s:sessions", r.prefix, userID)
}
