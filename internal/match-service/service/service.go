package service

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
	"github.com/radieske/match-bet-platform/pkg/contracts/events"
)

// Repository define a persistência de times e partidas usada pelo serviço
type Repository interface {
	CreateTeam(ctx context.Context, t match.Team) error
	GetTeam(ctx context.Context, id string) (match.Team, error)
	ListTeams(ctx context.Context, state string) ([]match.Team, error)
	CreateMatch(ctx context.Context, m match.Match) error
	GetMatch(ctx context.Context, id string) (match.Match, error)
	ListMatches(ctx context.Context, homeIdentifier string) ([]match.Match, error)
	CompleteMatch(ctx context.Context, id string, homeScore, awayScore int, at time.Time) (match.Match, error)
}

// Publisher publica o evento de partida finalizada (Kafka)
type Publisher interface {
	PublishMatchCompleted(ctx context.Context, e events.MatchCompleted) error
}

// Broadcaster repassa partidas atualizadas aos assinantes do feed ao vivo (WebSocket)
type Broadcaster interface {
	Broadcast(m match.Match)
}

type RegisterTeamInput struct {
	Identifier string `json:"identifier" validate:"required,max=64"`
	Name       string `json:"name" validate:"required,max=120"`
	Stadium    string `json:"stadium" validate:"max=120"`
	State      string `json:"state" validate:"max=32"`
}

type RegisterMatchInput struct {
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
}

// RecordResultInput usa ponteiros para diferenciar placar ausente de placar zero
type RecordResultInput struct {
	HomeScore *int `json:"homeScore" validate:"required,gte=0"`
	AwayScore *int `json:"awayScore" validate:"required,gte=0"`
}

// Service concentra as regras do campeonato: times, partidas e resultados
type Service struct {
	repo     Repository
	pub      Publisher
	feed     Broadcaster
	log      *zap.Logger
	metrics  *Metrics
	validate *validator.Validate

	now   func() time.Time
	newID func() string
}

func New(log *zap.Logger, repo Repository, pub Publisher, feed Broadcaster, m *Metrics) *Service {
	return &Service{
		repo:     repo,
		pub:      pub,
		feed:     feed,
		log:      log,
		metrics:  m,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// RegisterTeam cadastra um time; nome e identifier são obrigatórios e o identifier é único
func (s *Service) RegisterTeam(ctx context.Context, in RegisterTeamInput) (match.Team, error) {
	in.Identifier = strings.TrimSpace(in.Identifier)
	in.Name = strings.TrimSpace(in.Name)
	in.Stadium = strings.TrimSpace(in.Stadium)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return match.Team{}, invalid(err)
	}

	t := match.Team{
		ID:         s.newID(),
		Identifier: in.Identifier,
		Name:       in.Name,
		Stadium:    in.Stadium,
		State:      in.State,
		CreatedAt:  s.now(),
	}
	if err := s.repo.CreateTeam(ctx, t); err != nil {
		return match.Team{}, errors.Wrap(err, "register team")
	}
	return t, nil
}

func (s *Service) ListTeams(ctx context.Context, state string) ([]match.Team, error) {
	teams, err := s.repo.ListTeams(ctx, strings.ToUpper(strings.TrimSpace(state)))
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}
	return teams, nil
}

func (s *Service) GetTeam(ctx context.Context, id string) (match.Team, error) {
	t, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return match.Team{}, errors.Wrapf(err, "get team %s", id)
	}
	return t, nil
}

// RegisterMatch agenda uma partida entre dois times existentes, com placar 0x0
func (s *Service) RegisterMatch(ctx context.Context, in RegisterMatchInput) (match.Match, error) {
	in.HomeTeamID = strings.TrimSpace(in.HomeTeamID)
	in.AwayTeamID = strings.TrimSpace(in.AwayTeamID)
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return match.Match{}, invalid(err)
	}

	home, err := s.repo.GetTeam(ctx, in.HomeTeamID)
	if err != nil {
		return match.Match{}, errors.Wrapf(err, "home team %s", in.HomeTeamID)
	}
	away, err := s.repo.GetTeam(ctx, in.AwayTeamID)
	if err != nil {
		return match.Match{}, errors.Wrapf(err, "away team %s", in.AwayTeamID)
	}

	m := match.Match{
		ID:        s.newID(),
		Home:      match.TeamRef{ID: home.ID, Identifier: home.Identifier, Name: home.Name},
		Away:      match.TeamRef{ID: away.ID, Identifier: away.Identifier, Name: away.Name},
		Status:    match.StatusScheduled,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateMatch(ctx, m); err != nil {
		return match.Match{}, errors.Wrap(err, "register match")
	}

	s.log.Info("match scheduled",
		zap.String("match_id", m.ID),
		zap.String("home", home.Identifier),
		zap.String("away", away.Identifier),
	)
	return m, nil
}

// ListMatches lista partidas; homeIdentifier filtra pelo mandante
func (s *Service) ListMatches(ctx context.Context, homeIdentifier string) ([]match.Match, error) {
	matches, err := s.repo.ListMatches(ctx, strings.TrimSpace(homeIdentifier))
	if err != nil {
		return nil, errors.Wrap(err, "list matches")
	}
	return matches, nil
}

func (s *Service) GetMatch(ctx context.Context, id string) (match.Match, error) {
	m, err := s.repo.GetMatch(ctx, id)
	if err != nil {
		return match.Match{}, errors.Wrapf(err, "get match %s", id)
	}
	return m, nil
}

// RecordResult registra o placar final (uma única vez) e notifica os interessados.
// Falhas de publicação/broadcast são apenas logadas: o resultado já está persistido.
func (s *Service) RecordResult(ctx context.Context, id string, in RecordResultInput) (match.Match, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return match.Match{}, invalid(err)
	}

	m, err := s.repo.CompleteMatch(ctx, id, *in.HomeScore, *in.AwayScore, s.now())
	if err != nil {
		return match.Match{}, errors.Wrapf(err, "record result for match %s", id)
	}

	s.metrics.MatchesCompleted.Inc()
	s.log.Info("match completed",
		zap.String("match_id", m.ID),
		zap.Int("home_score", m.HomeScore),
		zap.Int("away_score", m.AwayScore),
	)

	if err := s.pub.PublishMatchCompleted(ctx, events.MatchCompleted{
		MatchID:     m.ID,
		HomeTeam:    m.Home.Name,
		AwayTeam:    m.Away.Name,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		CompletedAt: *m.CompletedAt,
	}); err != nil {
		s.log.Warn("publish match_completed failed", zap.String("match_id", m.ID), zap.Error(err))
	}
	s.feed.Broadcast(m)

	return m, nil
}

func invalid(err error) error {
	return errors.WithSecondaryError(errors.Wrapf(match.ErrInvalid, "%v", err), err)
}
