package bet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outcome é o resultado previsto (ou real) de uma partida
type Outcome string

const (
	HomeWin Outcome = "HOME_WIN"
	AwayWin Outcome = "AWAY_WIN"
	Draw    Outcome = "DRAW"
)

// Status da aposta: PLACED -> RESOLVED_WIN | RESOLVED_LOSS, uma única vez
type Status string

const (
	StatusPlaced       Status = "PLACED"
	StatusResolvedWin  Status = "RESOLVED_WIN"
	StatusResolvedLoss Status = "RESOLVED_LOSS"
)

// Valid informa se o status é um dos conhecidos
func (s Status) Valid() bool {
	switch s {
	case StatusPlaced, StatusResolvedWin, StatusResolvedLoss:
		return true
	}
	return false
}

// Bet é a aposta; a serialização HTTP fica em dto.BetResponse
type Bet struct {
	ID         string
	MatchID    string
	Predicted  Outcome
	Amount     decimal.Decimal
	Status     Status
	PlacedAt   time.Time
	ResolvedAt *time.Time
}

// Resolved indica que a aposta já saiu de PLACED
func (b Bet) Resolved() bool { return b.Status != StatusPlaced }

// Filter restringe a listagem; campos vazios não filtram
type Filter struct {
	Status  Status
	MatchID string
}
