package events

import "time"

// Evento emitido pelo bet-service quando uma aposta é registrada.
type BetPlaced struct {
	BetID     string    `json:"betId"`
	MatchID   string    `json:"matchId"`
	Predicted string    `json:"predicted"` // HOME_WIN | AWAY_WIN | DRAW
	Amount    string    `json:"amount"`    // decimal serializado
	PlacedAt  time.Time `json:"placedAt"`
}
