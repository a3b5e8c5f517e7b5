package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

var _ repositories.SessionRepository = (*SessionRepository)(nil)

// sessionRecord is the interview_sessions row. Queryable columns are denormalized
// next to the full JSON snapshot.
type sessionRecord struct {
	ID            string         `gorm:"type:uuid;primaryKey"`
	UserID        string         `gorm:"type:varchar(255);not null;default:''"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Category      string         `gorm:"type:varchar(50);not null"`
	Difficulty    string         `gorm:"type:varchar(20);not null"`
	Status        string         `gorm:"type:varchar(20);not null"`
	CurrentIndex  int            `gorm:"not null;default:0"`
	QuestionCount int            `gorm:"not null;default:0"`
	RunningScore  float64        `gorm:"type:numeric(4,2);not null;default:0"`
	Snapshot      datatypes.JSON `gorm:"type:jsonb;not null"`
	StartedAt     time.Time      `gorm:"not null"`
	CompletedAt   *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (sessionRecord) TableName() string {
	return "interview_sessions"
}

func toRecord(session *entities.Session) (*sessionRecord, error) {
	snapshot, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	return &sessionRecord{
		ID:            session.ID,
		UserID:        session.UserID,
		Title:         session.Title,
		Category:      string(session.Settings.Category),
		Difficulty:    string(session.Settings.Difficulty),
		Status:        string(session.Status),
		CurrentIndex:  session.CurrentIndex,
		QuestionCount: len(session.Questions),
		RunningScore:  session.RunningScore,
		Snapshot:      datatypes.JSON(snapshot),
		StartedAt:     session.StartedAt,
		CompletedAt:   session.CompletedAt,
	}, nil
}

func (r *sessionRecord) toEntity() (*entities.Session, error) {
	var session entities.Session
	if err := json.Unmarshal(r.Snapshot, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", r.ID, err)
	}
	return &session, nil
}

// SessionRepository implements the session repository interface using GORM
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

// Save inserts the session or replaces its row
func (r *SessionRepository) Save(ctx context.Context, session *entities.Session) error {
	record, err := toRecord(session)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "status", "current_index", "running_score", "snapshot", "completed_at", "updated_at"}),
		}).
		Create(record).Error; err != nil {
		return fmt.Errorf("%w: failed to save session: %w", usecaseErrors.ErrDatabase, err)
	}
	return nil
}

// Load finds a session by ID
func (r *SessionRepository) Load(ctx context.Context, id string) (*entities.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usecaseErrors.ErrSessionNotFound
	}

	var record sessionRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to find session by ID: %w", usecaseErrors.ErrDatabase, err)
	}
	return record.toEntity()
}

// ListByUser finds all sessions for a user, newest first
func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Session, error) {
	var records []sessionRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to find sessions by user ID: %w", usecaseErrors.ErrDatabase, err)
	}

	sessions := make([]*entities.Session, 0, len(records))
	for i := range records {
		session, err := records[i].toEntity()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
