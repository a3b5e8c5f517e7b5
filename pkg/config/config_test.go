package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StoreMemory, cfg.Session.Store)
	assert.Equal(t, 3, cfg.Session.MinQuestions)
	assert.Equal(t, 10, cfg.Session.MaxQuestions)
	assert.Equal(t, ScoringMock, cfg.Scoring.Provider)
	assert.Equal(t, 10*time.Second, cfg.Scoring.Timeout)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SCORING_TIMEOUT", "3s")
	t.Setenv("SCORING_SEED", "42")
	t.Setenv("DB_NAME", "practice")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StoreRedis, cfg.Session.Store)
	assert.Equal(t, 3*time.Second, cfg.Scoring.Timeout)
	assert.Equal(t, int64(42), cfg.Scoring.Seed)
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=practice")
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown store", "SESSION_STORE", "mongo"},
		{"unknown provider", "SCORING_PROVIDER", "gpt"},
		{"zero timeout", "SCORING_TIMEOUT", "0s"},
		{"bad min", "SESSION_MIN_QUESTIONS", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
