package match

import "time"

// Status do ciclo de vida de uma partida: SCHEDULED -> COMPLETED
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
)

// Team é um time cadastrado no campeonato.
type Team struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"` // slug único, ex: "flamengo"
	Name       string    `json:"name"`
	Stadium    string    `json:"stadium"`
	State      string    `json:"state"` // UF, ex: "SP"
	CreatedAt  time.Time `json:"createdAt"`
}

// TeamRef identifica um lado da partida com o nome já resolvido.
type TeamRef struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// Match é uma partida entre mandante (Home) e visitante (Away).
// Placar e status mudam uma única vez, quando o resultado é registrado.
type Match struct {
	ID          string     `json:"id"`
	Home        TeamRef    `json:"home"`
	Away        TeamRef    `json:"away"`
	HomeScore   int        `json:"homeScore"`
	AwayScore   int        `json:"awayScore"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (m Match) Completed() bool { return m.Status == StatusCompleted }
