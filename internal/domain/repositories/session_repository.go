package repositories

import (
	"context"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

// SessionRepository defines the interface for session persistence.
// Implementations must return usecase errors.ErrSessionNotFound from Load for unknown ids.
type SessionRepository interface {
	// Save creates or replaces a session snapshot
	Save(ctx context.Context, session *entities.Session) error

	// Load finds a session by ID
	Load(ctx context.Context, id string) (*entities.Session, error)

	// ListByUser finds all sessions for a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*entities.Session, error)
}
