package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
)

// Memory guarda apostas em memória (STORAGE_DRIVER=memory e testes).
type Memory struct {
	mu   sync.RWMutex
	bets map[string]bet.Bet
}

func NewMemory() *Memory {
	return &Memory{bets: make(map[string]bet.Bet)}
}

func (m *Memory) Get(_ context.Context, id string) (bet.Bet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.bets[id]
	if !ok {
		return bet.Bet{}, bet.ErrNotFound
	}
	return b, nil
}

func (m *Memory) Save(_ context.Context, b bet.Bet) (bet.Bet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bets[b.ID] = b
	return b, nil
}

func (m *Memory) List(_ context.Context, f bet.Filter) ([]bet.Bet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]bet.Bet, 0, len(m.bets))
	for _, b := range m.bets {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.MatchID != "" && b.MatchID != f.MatchID {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PlacedAt.Equal(out[j].PlacedAt) {
			return out[i].PlacedAt.Before(out[j].PlacedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
