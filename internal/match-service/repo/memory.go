package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
)

// Memory guarda times e partidas em memória (STORAGE_DRIVER=memory e testes).
type Memory struct {
	mu      sync.RWMutex
	teams   map[string]match.Team
	byIdent map[string]string // identifier -> team id
	matches map[string]storedMatch
}

// partida guardada só com os ids dos times; nomes são resolvidos na leitura
type storedMatch struct {
	ID          string
	HomeID      string
	AwayID      string
	HomeScore   int
	AwayScore   int
	Status      match.Status
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func NewMemory() *Memory {
	return &Memory{
		teams:   make(map[string]match.Team),
		byIdent: make(map[string]string),
		matches: make(map[string]storedMatch),
	}
}

func (m *Memory) CreateTeam(_ context.Context, t match.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byIdent[t.Identifier]; ok {
		return errors.Wrapf(match.ErrDuplicateTeam, "identifier %q", t.Identifier)
	}
	m.teams[t.ID] = t
	m.byIdent[t.Identifier] = t.ID
	return nil
}

func (m *Memory) GetTeam(_ context.Context, id string) (match.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[id]
	if !ok {
		return match.Team{}, match.ErrTeamNotFound
	}
	return t, nil
}

func (m *Memory) ListTeams(_ context.Context, state string) ([]match.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]match.Team, 0, len(m.teams))
	for _, t := range m.teams {
		if state == "" || t.State == state {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) CreateMatch(_ context.Context, mt match.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.matches[mt.ID] = storedMatch{
		ID:        mt.ID,
		HomeID:    mt.Home.ID,
		AwayID:    mt.Away.ID,
		HomeScore: mt.HomeScore,
		AwayScore: mt.AwayScore,
		Status:    mt.Status,
		CreatedAt: mt.CreatedAt,
	}
	return nil
}

func (m *Memory) GetMatch(_ context.Context, id string) (match.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.matches[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return m.hydrate(s), nil
}

func (m *Memory) ListMatches(_ context.Context, homeIdentifier string) ([]match.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]match.Match, 0, len(m.matches))
	for _, s := range m.matches {
		mt := m.hydrate(s)
		if homeIdentifier == "" || mt.Home.Identifier == homeIdentifier {
			out = append(out, mt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) CompleteMatch(_ context.Context, id string, homeScore, awayScore int, at time.Time) (match.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.matches[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	if s.Status != match.StatusScheduled {
		return match.Match{}, match.ErrAlreadyCompleted
	}

	s.HomeScore = homeScore
	s.AwayScore = awayScore
	s.Status = match.StatusCompleted
	s.CompletedAt = &at
	m.matches[id] = s

	return m.hydrate(s), nil
}

// hydrate resolve os times da partida; chamador segura o lock
func (m *Memory) hydrate(s storedMatch) match.Match {
	ref := func(id string) match.TeamRef {
		t := m.teams[id]
		return match.TeamRef{ID: t.ID, Identifier: t.Identifier, Name: t.Name}
	}
	return match.Match{
		ID:          s.ID,
		Home:        ref(s.HomeID),
		Away:        ref(s.AwayID),
		HomeScore:   s.HomeScore,
		AwayScore:   s.AwayScore,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
	}
}
