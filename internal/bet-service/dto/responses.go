package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
)

type BetResponse struct {
	ID         string          `json:"id"`
	MatchID    string          `json:"matchId"`
	Predicted  string          `json:"predicted"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"` // PLACED | RESOLVED_WIN | RESOLVED_LOSS
	PlacedAt   time.Time       `json:"placedAt"`
	ResolvedAt *time.Time      `json:"resolvedAt,omitempty"`
}

func FromBet(b bet.Bet) BetResponse {
	return BetResponse{
		ID:         b.ID,
		MatchID:    b.MatchID,
		Predicted:  string(b.Predicted),
		Amount:     b.Amount,
		Status:     string(b.Status),
		PlacedAt:   b.PlacedAt,
		ResolvedAt: b.ResolvedAt,
	}
}

func FromBets(bs []bet.Bet) []BetResponse {
	out := make([]BetResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBet(b))
	}
	return out
}
