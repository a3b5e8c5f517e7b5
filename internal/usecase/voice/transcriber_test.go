package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

type fakeArchiver struct {
	names []string
	err   error
}

func (f *fakeArchiver) ArchiveAudio(ctx context.Context, sessionID, questionID, filename string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	name := sessionID + "/" + questionID
	f.names = append(f.names, name)
	return name, nil
}

func TestSimulatedTranscriber(t *testing.T) {
	tr := NewSimulatedTranscriber(0)

	text, err := tr.Transcribe(context.Background(), []byte("audio"), "audio/webm")
	require.NoError(t, err)
	assert.Equal(t, SimulatedText, text)

	_, err = tr.Transcribe(context.Background(), nil, "audio/webm")
	assert.ErrorIs(t, err, usecaseErrors.ErrEmptyAudio)
}

func TestSimulatedTranscriber_Cancelled(t *testing.T) {
	tr := NewSimulatedTranscriber(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Transcribe(ctx, []byte("audio"), "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Transcribe(t *testing.T) {
	archiver := &fakeArchiver{}
	svc := NewService(NewSimulatedTranscriber(0), archiver, nil)

	text, err := svc.Transcribe(context.Background(), Recording{SessionID: "s", QuestionID: "q", Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, SimulatedText, text)
	assert.Equal(t, []string{"s/q"}, archiver.names)

	_, err = svc.Transcribe(context.Background(), Recording{SessionID: "s"})
	assert.ErrorIs(t, err, usecaseErrors.ErrEmptyAudio)
}

func TestService_ArchiveFailureIsNotFatal(t *testing.T) {
	svc := NewService(NewSimulatedTranscriber(0), &fakeArchiver{err: errors.New("minio down")}, nil)

	text, err := svc.Transcribe(context.Background(), Recording{Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, SimulatedText, text)
}
