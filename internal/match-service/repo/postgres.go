package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
)

// código Postgres para violação de UNIQUE
const uniqueViolation = "23505"

const selectMatch = `
	SELECT m.id,
	       h.id AS home_id, h.identifier AS home_identifier, h.name AS home_name,
	       a.id AS away_id, a.identifier AS away_identifier, a.name AS away_name,
	       m.home_score, m.away_score, m.status, m.created_at, m.completed_at
	FROM matches m
	JOIN teams h ON h.id = m.home_team_id
	JOIN teams a ON a.id = m.away_team_id`

// Postgres implementa a persistência de times e partidas
type Postgres struct{ db *sqlx.DB }

// NewPostgres retorna uma instância do repositório de times/partidas
func NewPostgres(db *sqlx.DB) *Postgres { return &Postgres{db: db} }

// CreateTeam insere um time; identifier duplicado vira ErrDuplicateTeam
func (p *Postgres) CreateTeam(ctx context.Context, t match.Team) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO teams (id, identifier, name, stadium, state, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.Identifier, t.Name, t.Stadium, t.State, t.CreatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errors.Wrapf(match.ErrDuplicateTeam, "identifier %q", t.Identifier)
	}
	return errors.Wrap(err, "insert team")
}

// GetTeam busca um time pelo id
func (p *Postgres) GetTeam(ctx context.Context, id string) (match.Team, error) {
	if _, err := uuid.Parse(id); err != nil {
		return match.Team{}, match.ErrTeamNotFound
	}
	var row teamRow
	err := p.db.GetContext(ctx, &row, `
		SELECT id, identifier, name, stadium, state, created_at
		FROM teams WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return match.Team{}, match.ErrTeamNotFound
	}
	if err != nil {
		return match.Team{}, errors.Wrap(err, "select team")
	}
	return row.toDomain(), nil
}

// ListTeams lista os times, opcionalmente filtrando pelo estado
func (p *Postgres) ListTeams(ctx context.Context, state string) ([]match.Team, error) {
	var rows []teamRow
	err := p.db.SelectContext(ctx, &rows, `
		SELECT id, identifier, name, stadium, state, created_at
		FROM teams
		WHERE ($1::text = '' OR state = $1)
		ORDER BY created_at, id`, state)
	if err != nil {
		return nil, errors.Wrap(err, "select teams")
	}
	out := make([]match.Team, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// CreateMatch insere uma partida agendada
func (p *Postgres) CreateMatch(ctx context.Context, m match.Match) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO matches (id, home_team_id, away_team_id, home_score, away_score, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.Home.ID, m.Away.ID, m.HomeScore, m.AwayScore, string(m.Status), m.CreatedAt,
	)
	return errors.Wrap(err, "insert match")
}

// GetMatch busca uma partida com os nomes dos times
func (p *Postgres) GetMatch(ctx context.Context, id string) (match.Match, error) {
	return getMatch(ctx, p.db, id)
}

// ListMatches lista as partidas, opcionalmente só as do mandante com o identifier informado
func (p *Postgres) ListMatches(ctx context.Context, homeIdentifier string) ([]match.Match, error) {
	var rows []matchRow
	err := p.db.SelectContext(ctx, &rows, selectMatch+`
		WHERE ($1::text = '' OR h.identifier = $1)
		ORDER BY m.created_at, m.id`, homeIdentifier)
	if err != nil {
		return nil, errors.Wrap(err, "select matches")
	}
	out := make([]match.Match, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// CompleteMatch registra o placar final e marca a partida como COMPLETED.
// Lock pessimista na linha; partida já finalizada retorna ErrAlreadyCompleted sem alterar nada.
func (p *Postgres) CompleteMatch(ctx context.Context, id string, homeScore, awayScore int, at time.Time) (match.Match, error) {
	if _, err := uuid.Parse(id); err != nil {
		return match.Match{}, match.ErrNotFound
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM matches WHERE id=$1 FOR UPDATE`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return match.Match{}, match.ErrNotFound
	}
	if err != nil {
		return match.Match{}, errors.Wrap(err, "lock match")
	}
	if match.Status(status) != match.StatusScheduled {
		return match.Match{}, match.ErrAlreadyCompleted
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE matches SET home_score=$1, away_score=$2, status=$3, completed_at=$4
		WHERE id=$5`,
		homeScore, awayScore, string(match.StatusCompleted), at, id); err != nil {
		return match.Match{}, errors.Wrap(err, "update match result")
	}

	m, err := getMatch(ctx, tx, id)
	if err != nil {
		return match.Match{}, err
	}

	if err = tx.Commit(); err != nil {
		return match.Match{}, errors.Wrap(err, "commit match result")
	}
	return m, nil
}

func getMatch(ctx context.Context, q sqlx.QueryerContext, id string) (match.Match, error) {
	if _, err := uuid.Parse(id); err != nil {
		return match.Match{}, match.ErrNotFound
	}
	var row matchRow
	err := sqlx.GetContext(ctx, q, &row, selectMatch+` WHERE m.id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return match.Match{}, match.ErrNotFound
	}
	if err != nil {
		return match.Match{}, errors.Wrap(err, "select match")
	}
	return row.toDomain(), nil
}
