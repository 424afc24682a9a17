package repo

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
)

// Postgres implementa operações de persistência de apostas em banco Postgres
type Postgres struct{ db *sqlx.DB }

// NewPostgres retorna uma instância do repositório de apostas
func NewPostgres(db *sqlx.DB) *Postgres { return &Postgres{db: db} }

// Get retorna a aposta pelo id
func (p *Postgres) Get(ctx context.Context, id string) (bet.Bet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return bet.Bet{}, bet.ErrNotFound
	}
	var row betRow
	err := p.db.GetContext(ctx, &row, `
		SELECT id, match_id, predicted, amount, status, placed_at, resolved_at
		FROM bets WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return bet.Bet{}, bet.ErrNotFound
	}
	if err != nil {
		return bet.Bet{}, errors.Wrap(err, "select bet")
	}
	return row.toDomain(), nil
}

// Save insere ou atualiza a aposta (upsert pelo id)
func (p *Postgres) Save(ctx context.Context, b bet.Bet) (bet.Bet, error) {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO bets (id, match_id, predicted, amount, status, placed_at, resolved_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, resolved_at = EXCLUDED.resolved_at`,
		b.ID, b.MatchID, string(b.Predicted), b.Amount, string(b.Status), b.PlacedAt, b.ResolvedAt,
	)
	if err != nil {
		return bet.Bet{}, errors.Wrapf(err, "save bet %s", b.ID)
	}
	return b, nil
}

// List lista apostas, opcionalmente por status e/ou partida
func (p *Postgres) List(ctx context.Context, f bet.Filter) ([]bet.Bet, error) {
	var rows []betRow
	err := p.db.SelectContext(ctx, &rows, `
		SELECT id, match_id, predicted, amount, status, placed_at, resolved_at
		FROM bets
		WHERE ($1::text = '' OR status = $1)
		  AND ($2::text = '' OR match_id = $2)
		ORDER BY placed_at, id`, string(f.Status), f.MatchID)
	if err != nil {
		return nil, errors.Wrap(err, "select bets")
	}
	out := make([]bet.Bet, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}
