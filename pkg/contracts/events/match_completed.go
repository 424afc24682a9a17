package events

import "time"

// Evento publicado no tópico "match_completed" quando o placar final é registrado
type MatchCompleted struct {
	MatchID     string    `json:"matchId"`
	HomeTeam    string    `json:"homeTeam"`
	AwayTeam    string    `json:"awayTeam"`
	HomeScore   int       `json:"homeScore"`
	AwayScore   int       `json:"awayScore"`
	CompletedAt time.Time `json:"completedAt"`
}
