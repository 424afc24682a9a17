package ws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
)

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message any) *redis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	return redis.NewIntResult(1, f.err)
}

func TestRedisFanout_PublishesToChannel(t *testing.T) {
	pub := &fakePublisher{}
	f := NewRedisFanout(zap.NewNop(), pub, NewHub(zap.NewNop(), allowAll))

	f.Broadcast(match.Match{ID: "m-1", HomeScore: 1, Status: match.StatusCompleted})

	assert.Equal(t, PubSubChannel, pub.channel)
	var got match.Match
	require.NoError(t, json.Unmarshal(pub.payload, &got))
	assert.Equal(t, "m-1", got.ID)
	assert.Equal(t, 1, got.HomeScore)
}

func TestRedisFanout_FallsBackToLocalHub(t *testing.T) {
	hub := NewHub(zap.NewNop(), allowAll)
	c := dial(t, hub)
	send(t, c, ClientMsg{Type: "subscribe", MatchID: "m-1"})

	f := NewRedisFanout(zap.NewNop(), &fakePublisher{err: assert.AnError}, hub)
	f.Broadcast(match.Match{ID: "m-1"})

	var got MatchUpdate
	require.NoError(t, c.ReadJSON(&got))
	assert.Equal(t, "m-1", got.MatchID)
}

func TestForward(t *testing.T) {
	hub := NewHub(zap.NewNop(), allowAll)
	c := dial(t, hub)
	send(t, c, ClientMsg{Type: "subscribe", MatchID: AllMatches})

	forward(zap.NewNop(), hub, "garbage")
	forward(zap.NewNop(), hub, `{"id":"m-7","homeScore":2}`)

	var got MatchUpdate
	require.NoError(t, c.ReadJSON(&got))
	assert.Equal(t, "m-7", got.MatchID)
}
