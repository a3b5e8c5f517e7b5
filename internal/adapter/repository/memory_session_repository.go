package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/domain/repositories"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

const memorySessionPrefix = "session:"

var _ repositories.SessionRepository = (*MemorySessionRepository)(nil)

// MemorySessionRepository keeps session snapshots in process memory
type MemorySessionRepository struct {
	store *cache.MemoryStore
	ttl   time.Duration
}

// NewMemorySessionRepository creates a memory repository. A zero ttl keeps sessions forever.
func NewMemorySessionRepository(store *cache.MemoryStore, ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{store: store, ttl: ttl}
}

// Save stores a JSON snapshot of the session
func (r *MemorySessionRepository) Save(ctx context.Context, session *entities.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	r.store.Set(memorySessionPrefix+session.ID, data, r.ttl)
	return nil
}

// Load finds a session by ID
func (r *MemorySessionRepository) Load(ctx context.Context, id string) (*entities.Session, error) {
	data, ok := r.store.Get(memorySessionPrefix + id)
	if !ok {
		return nil, usecaseErrors.ErrSessionNotFound
	}
	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// ListByUser finds all sessions for a user, newest first
func (r *MemorySessionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Session, error) {
	sessions := make([]*entities.Session, 0)
	for _, key := range r.store.Keys(memorySessionPrefix) {
		session, err := r.Load(ctx, strings.TrimPrefix(key, memorySessionPrefix))
		if err != nil {
			continue // expired between Keys and Load
		}
		if session.UserID == userID {
			sessions = append(sessions, session)
		}
	}
	sortNewestFirst(sessions)
	return sessions, nil
}
