package storage

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

type memoryObjectStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemoryObjectStore() *memoryObjectStore {
	return &memoryObjectStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryObjectStore) UploadFile(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[name] = data
	m.types[name] = contentType
	return nil
}

func (m *memoryObjectStore) GetFileURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	return "http://minio.local/bucket/" + name, nil
}

func (m *memoryObjectStore) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	var out []string
	for k := range m.objects {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, k)
		}
	}
	return out, nil
}

func TestArchive_Report(t *testing.T) {
	store := newMemoryObjectStore()
	archive := NewArchive(store)

	s := entities.NewSession("alice")
	s.Questions = []entities.Question{{ID: "1", Text: "q"}}
	summary := &entities.SessionSummary{SessionID: s.ID, AverageScore: 8}

	require.NoError(t, archive.ArchiveReport(context.Background(), s, summary))

	name := "reports/alice/" + s.ID + ".json"
	require.Contains(t, store.objects, name)
	assert.Equal(t, "application/json", store.types[name])

	var report Report
	require.NoError(t, json.Unmarshal(store.objects[name], &report))
	assert.Equal(t, 8.0, report.Summary.AverageScore)
	assert.Len(t, report.Questions, 1)

	list, err := archive.ListReports(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{s.ID}, list)

	url, err := archive.ReportURL(context.Background(), "alice", s.ID, time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, name)
}

func TestArchive_Audio(t *testing.T) {
	store := newMemoryObjectStore()
	archive := NewArchive(store)

	name, err := archive.ArchiveAudio(context.Background(), "s1", "q1", "answer.WAV", []byte("RIFF"), "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "audio/s1/q1.wav", name)
	assert.Equal(t, "audio/wav", store.types[name])

	name, err = archive.ArchiveAudio(context.Background(), "s1", "q2", "blob", []byte("x"), "")
	require.NoError(t, err)
	assert.Equal(t, "audio/s1/q2.webm", name)
	assert.Equal(t, "application/octet-stream", store.types[name])
}

func TestObjectNames(t *testing.T) {
	assert.Equal(t, "reports/anonymous/s1.json", ReportObjectName("", "s1"))
	assert.Equal(t, "reports/a_b/s1.json", ReportObjectName("a/b", "s1"))
	assert.Equal(t, "audio/s/q.mp3", AudioObjectName("s", "q", "../../etc/x.mp3"))
}
