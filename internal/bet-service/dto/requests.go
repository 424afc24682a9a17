package dto

import "github.com/shopspring/decimal"

// PlaceBetRequest é o corpo de POST /bets; amount é opcional (default 0)
type PlaceBetRequest struct {
	MatchID   string          `json:"matchId"`
	Predicted string          `json:"predicted"` // HOME_WIN | AWAY_WIN | DRAW
	Amount    decimal.Decimal `json:"amount"`
}
