package voice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

// SimulatedText is what the simulated transcriber hears in every recording
const SimulatedText = "This is a simulated transcription of my response to the interview question. " +
	"I would provide a detailed answer based on my experience and the specific situation described."

// DefaultDelay mimics speech-to-text processing time
const DefaultDelay = time.Second

// Transcriber turns recorded audio into answer text
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (string, error)
}

// AudioArchiver keeps a copy of uploaded recordings
type AudioArchiver interface {
	ArchiveAudio(ctx context.Context, sessionID, questionID, filename string, data []byte, contentType string) (string, error)
}

// SimulatedTranscriber returns SimulatedText after a delay, whatever the audio says
type SimulatedTranscriber struct {
	delay time.Duration
}

// NewSimulatedTranscriber creates a simulated transcriber
func NewSimulatedTranscriber(delay time.Duration) *SimulatedTranscriber {
	return &SimulatedTranscriber{delay: delay}
}

// Transcribe waits for the delay and returns the canned text
func (t *SimulatedTranscriber) Transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	if len(audio) == 0 {
		return "", usecaseErrors.ErrEmptyAudio
	}
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return SimulatedText, nil
}

// Recording is one uploaded voice answer
type Recording struct {
	SessionID   string
	QuestionID  string
	Filename    string
	ContentType string
	Data        []byte
}

// Service archives a recording when an archiver is configured and transcribes it
type Service struct {
	transcriber Transcriber
	archiver    AudioArchiver
	logger      *zap.Logger
}

// NewService creates a voice service. archiver may be nil.
func NewService(transcriber Transcriber, archiver AudioArchiver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{transcriber: transcriber, archiver: archiver, logger: logger}
}

// Transcribe returns the answer text of a recording. Archive failures are logged only.
func (s *Service) Transcribe(ctx context.Context, rec Recording) (string, error) {
	if len(rec.Data) == 0 {
		return "", usecaseErrors.ErrEmptyAudio
	}

	if s.archiver != nil {
		name, err := s.archiver.ArchiveAudio(ctx, rec.SessionID, rec.QuestionID, rec.Filename, rec.Data, rec.ContentType)
		if err != nil {
			s.logger.Warn("failed to archive recording",
				zap.String("session_id", rec.SessionID),
				zap.Error(err),
			)
		} else {
			s.logger.Debug("recording archived", zap.String("object", name))
		}
	}

	text, err := s.transcriber.Transcribe(ctx, rec.Data, rec.ContentType)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return text, nil
}
