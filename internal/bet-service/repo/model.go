package repo

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
)

// betRow é o modelo persistido na tabela bets.
type betRow struct {
	ID         string          `db:"id"`
	MatchID    string          `db:"match_id"`
	Predicted  string          `db:"predicted"`
	Amount     decimal.Decimal `db:"amount"`
	Status     string          `db:"status"`
	PlacedAt   time.Time       `db:"placed_at"`
	ResolvedAt sql.NullTime    `db:"resolved_at"`
}

func (r betRow) toDomain() bet.Bet {
	b := bet.Bet{
		ID:        r.ID,
		MatchID:   r.MatchID,
		Predicted: bet.Outcome(r.Predicted),
		Amount:    r.Amount,
		Status:    bet.Status(r.Status),
		PlacedAt:  r.PlacedAt,
	}
	if r.ResolvedAt.Valid {
		t := r.ResolvedAt.Time
		b.ResolvedAt = &t
	}
	return b
}
