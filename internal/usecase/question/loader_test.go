package question

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

const validCatalog = `
questions:
  - id: q1
    text: Tell me about yourself.
    category: culture-fit
    difficulty: easy
    type: behavioral
  - id: q2
    text: Design a rate limiter.
    category: technical-skills
    difficulty: hard
    type: technical
    role: backend engineer
`

func TestParseBank(t *testing.T) {
	bank, err := ParseBank([]byte(validCatalog))
	require.NoError(t, err)
	require.Equal(t, 2, bank.Size())

	got := bank.Find(ByType(entities.QuestionTypeTechnical))
	require.Len(t, got, 1)
	assert.Equal(t, "q2", got[0].ID)
	require.NotNil(t, got[0].Role)
	assert.Equal(t, "backend engineer", *got[0].Role)
	assert.Nil(t, got[0].Industry)
}

func TestParseBank_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "questions: ["},
		{"empty", "questions: []"},
		{"missing id", "questions:\n  - text: x\n    category: teamwork\n    difficulty: easy\n    type: behavioral\n"},
		{"duplicate id", "questions:\n  - {id: a, text: x, category: teamwork, difficulty: easy, type: behavioral}\n  - {id: a, text: y, category: teamwork, difficulty: easy, type: behavioral}\n"},
		{"missing text", "questions:\n  - {id: a, category: teamwork, difficulty: easy, type: behavioral}\n"},
		{"bad category", "questions:\n  - {id: a, text: x, category: sales, difficulty: easy, type: behavioral}\n"},
		{"bad difficulty", "questions:\n  - {id: a, text: x, category: teamwork, difficulty: insane, type: behavioral}\n"},
		{"bad type", "questions:\n  - {id: a, text: x, category: teamwork, difficulty: easy, type: trivia}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o600))

	bank, err := LoadBank(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Size())

	_, err = LoadBank(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
