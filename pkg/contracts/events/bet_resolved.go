package events

import "time"

// Evento emitido após a resolução de uma aposta contra o placar final.
type BetResolved struct {
	BetID      string    `json:"betId"`
	MatchID    string    `json:"matchId"`
	Status     string    `json:"status"` // "RESOLVED_WIN" | "RESOLVED_LOSS"
	ResolvedAt time.Time `json:"resolvedAt"`
}
