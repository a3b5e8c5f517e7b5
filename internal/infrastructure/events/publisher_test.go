package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

func TestBuildMessage(t *testing.T) {
	at := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)
	event := entities.SessionEvent{
		Type:         entities.EventSessionCompleted,
		SessionID:    "s1",
		UserID:       "u1",
		Category:     entities.CategoryTeamwork,
		Difficulty:   entities.DifficultyHard,
		RunningScore: 8,
		OccurredAt:   at,
	}

	key, msg, err := buildMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "session.completed", key)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, at, msg.Timestamp)
	assert.Equal(t, "s1", msg.Headers["session_id"])
	assert.NotEmpty(t, msg.MessageId)

	var decoded entities.SessionEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event, decoded)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), entities.SessionEvent{}))
	assert.NoError(t, p.Close())
}
