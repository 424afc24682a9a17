package producer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skafka "github.com/radieske/match-bet-platform/internal/shared/kafka"
	"github.com/radieske/match-bet-platform/pkg/contracts/events"
)

func TestKafkaPublisher_NilWriterSkipsTopic(t *testing.T) {
	p := NewKafkaPublisher(nil, nil)

	require.NoError(t, p.PublishBetPlaced(t.Context(), events.BetPlaced{BetID: "bet-1", MatchID: "m-1", PlacedAt: time.Now()}))
	require.NoError(t, p.PublishBetResolved(t.Context(), events.BetResolved{BetID: "bet-1", MatchID: "m-1", Status: "RESOLVED_WIN"}))
	assert.NoError(t, p.Close())
}

func TestKafkaPublisher_CloseOnlyResolvedWriter(t *testing.T) {
	resolved := skafka.NewWriter("localhost:9092", "bet_resolved")
	p := NewKafkaPublisher(nil, resolved)

	assert.Nil(t, p.Placed)
	assert.Same(t, resolved, p.Resolved)
	assert.NoError(t, p.Close())
}

func TestNoop(t *testing.T) {
	var n Noop
	assert.NoError(t, n.PublishBetPlaced(t.Context(), events.BetPlaced{}))
	assert.NoError(t, n.PublishBetResolved(t.Context(), events.BetResolved{}))
}
