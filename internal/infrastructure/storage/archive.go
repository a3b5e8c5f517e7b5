package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

const anonymousUser = "anonymous"

// ObjectStore is the subset of object storage the archive needs
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}

// Report is the archived document of a completed session
type Report struct {
	Summary   *entities.SessionSummary     `json:"summary"`
	Questions []entities.Question          `json:"questions"`
	Responses []entities.InterviewResponse `json:"responses"`
	Scores    []entities.ScoreResult       `json:"scores"`
}

// Archive stores session reports and uploaded voice answers
type Archive struct {
	store ObjectStore
}

// NewArchive creates an archive over an object store
func NewArchive(store ObjectStore) *Archive {
	return &Archive{store: store}
}

// ArchiveReport uploads the JSON report of a completed session
func (a *Archive) ArchiveReport(ctx context.Context, session *entities.Session, summary *entities.SessionSummary) error {
	data, err := json.MarshalIndent(Report{
		Summary:   summary,
		Questions: session.Questions,
		Responses: session.Responses,
		Scores:    session.Scores,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return a.store.UploadFile(ctx, ReportObjectName(session.UserID, session.ID), bytes.NewReader(data), int64(len(data)), "application/json")
}

// ArchiveAudio uploads a recorded answer and returns its object name
func (a *Archive) ArchiveAudio(ctx context.Context, sessionID, questionID, filename string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	name := AudioObjectName(sessionID, questionID, filename)
	if err := a.store.UploadFile(ctx, name, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", err
	}
	return name, nil
}

// ReportURL returns a presigned link to a session report
func (a *Archive) ReportURL(ctx context.Context, userID, sessionID string, expiry time.Duration) (string, error) {
	return a.store.GetFileURL(ctx, ReportObjectName(userID, sessionID), expiry)
}

// ListReports returns the ids of the sessions archived for a user, sorted
func (a *Archive) ListReports(ctx context.Context, userID string) ([]string, error) {
	names, err := a.store.ListFiles(ctx, path.Join("reports", userFolder(userID))+"/")
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		base := path.Base(name)
		if !strings.HasSuffix(base, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(base, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// ReportObjectName builds reports/<user>/<session>.json
func ReportObjectName(userID, sessionID string) string {
	return path.Join("reports", userFolder(userID), sessionID+".json")
}

// AudioObjectName builds audio/<session>/<question><ext>
func AudioObjectName(sessionID, questionID, filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if ext == "" {
		ext = ".webm"
	}
	return path.Join("audio", sessionID, questionID+ext)
}

func userFolder(userID string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return anonymousUser
	}
	return strings.ReplaceAll(userID, "/", "_")
}
