package repo

import (
	"database/sql"
	"time"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
)

// teamRow é o modelo persistido na tabela teams.
type teamRow struct {
	ID         string    `db:"id"`
	Identifier string    `db:"identifier"`
	Name       string    `db:"name"`
	Stadium    string    `db:"stadium"`
	State      string    `db:"state"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r teamRow) toDomain() match.Team {
	return match.Team{
		ID:         r.ID,
		Identifier: r.Identifier,
		Name:       r.Name,
		Stadium:    r.Stadium,
		State:      r.State,
		CreatedAt:  r.CreatedAt,
	}
}

// matchRow é a partida já com os dados dos dois times (JOIN em teams).
type matchRow struct {
	ID             string       `db:"id"`
	HomeID         string       `db:"home_id"`
	HomeIdentifier string       `db:"home_identifier"`
	HomeName       string       `db:"home_name"`
	AwayID         string       `db:"away_id"`
	AwayIdentifier string       `db:"away_identifier"`
	AwayName       string       `db:"away_name"`
	HomeScore      int          `db:"home_score"`
	AwayScore      int          `db:"away_score"`
	Status         string       `db:"status"`
	CreatedAt      time.Time    `db:"created_at"`
	CompletedAt    sql.NullTime `db:"completed_at"`
}

func (r matchRow) toDomain() match.Match {
	m := match.Match{
		ID:        r.ID,
		Home:      match.TeamRef{ID: r.HomeID, Identifier: r.HomeIdentifier, Name: r.HomeName},
		Away:      match.TeamRef{ID: r.AwayID, Identifier: r.AwayIdentifier, Name: r.AwayName},
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
		Status:    match.Status(r.Status),
		CreatedAt: r.CreatedAt,
	}
	if r.CompletedAt.Valid {
		t := r.CompletedAt.Time
		m.CompletedAt = &t
	}
	return m
}
