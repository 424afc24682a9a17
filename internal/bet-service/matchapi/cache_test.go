package matchapi

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
)

type getterMock struct{ mock.Mock }

func (g *getterMock) GetMatch(ctx context.Context, id string) (Match, error) {
	args := g.Called(ctx, id)
	return args.Get(0).(Match), args.Error(1)
}

// memKV imita o Redis com um map; getErr simula indisponibilidade
type memKV struct {
	mu     sync.Mutex
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memKV) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memKV) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = string(value.([]byte))
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestCachedClient_CachesCompletedMatches(t *testing.T) {
	next := &getterMock{}
	kv := newMemKV()
	c := NewCachedClient(zap.NewNop(), next, kv, time.Minute)

	done := Match{ID: "m-1", HomeScore: 2, AwayScore: 1, Status: StatusCompleted}
	next.On("GetMatch", mock.Anything, "m-1").Return(done, nil).Once()

	first, err := c.GetMatch(t.Context(), "m-1")
	require.NoError(t, err)
	second, err := c.GetMatch(t.Context(), "m-1")
	require.NoError(t, err)

	assert.Equal(t, done, first)
	assert.Equal(t, done, second)
	assert.Equal(t, time.Minute, kv.ttls["match:completed:m-1"])
	next.AssertNumberOfCalls(t, "GetMatch", 1)
}

func TestCachedClient_NeverCachesScheduled(t *testing.T) {
	next := &getterMock{}
	kv := newMemKV()
	c := NewCachedClient(zap.NewNop(), next, kv, time.Minute)

	next.On("GetMatch", mock.Anything, "m-1").Return(Match{ID: "m-1", Status: "SCHEDULED"}, nil).Twice()

	for range 2 {
		m, err := c.GetMatch(t.Context(), "m-1")
		require.NoError(t, err)
		assert.False(t, m.Completed())
	}

	assert.Empty(t, kv.data)
	next.AssertExpectations(t)
}

func TestCachedClient_RedisDownFallsThrough(t *testing.T) {
	next := &getterMock{}
	kv := newMemKV()
	kv.getErr = assert.AnError
	c := NewCachedClient(zap.NewNop(), next, kv, time.Minute)

	next.On("GetMatch", mock.Anything, "m-1").Return(Match{ID: "m-1", Status: StatusCompleted}, nil)

	m, err := c.GetMatch(t.Context(), "m-1")
	require.NoError(t, err)
	assert.True(t, m.Completed())
}

func TestCachedClient_PropagatesMatchNotFound(t *testing.T) {
	next := &getterMock{}
	c := NewCachedClient(zap.NewNop(), next, newMemKV(), time.Minute)

	next.On("GetMatch", mock.Anything, "missing").Return(Match{}, bet.ErrMatchNotFound)

	_, err := c.GetMatch(t.Context(), "missing")
	assert.ErrorIs(t, err, bet.ErrMatchNotFound)
}
