package service

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
	"github.com/radieske/match-bet-platform/internal/bet-service/matchapi"
	"github.com/radieske/match-bet-platform/pkg/contracts/events"
)

// Repository é a persistência de apostas
type Repository interface {
	Get(ctx context.Context, id string) (bet.Bet, error)
	Save(ctx context.Context, b bet.Bet) (bet.Bet, error)
	List(ctx context.Context, f bet.Filter) ([]bet.Bet, error)
}

// MatchGetter consulta partidas no match-service (direto ou via cache)
type MatchGetter interface {
	GetMatch(ctx context.Context, id string) (matchapi.Match, error)
}

// Publisher publica os eventos de aposta (Kafka)
type Publisher interface {
	PublishBetPlaced(ctx context.Context, e events.BetPlaced) error
	PublishBetResolved(ctx context.Context, e events.BetResolved) error
}

type PlaceBetInput struct {
	MatchID   string          `json:"matchId" validate:"required"`
	Predicted string          `json:"predicted" validate:"required,oneof=HOME_WIN AWAY_WIN DRAW"`
	Amount    decimal.Decimal `json:"amount" validate:"gte=0"`
}

type Service struct {
	repo     Repository
	matches  MatchGetter
	pub      Publisher
	log      *zap.Logger
	metrics  *Metrics
	validate *validator.Validate

	now   func() time.Time
	newID func() string
}

func New(log *zap.Logger, repo Repository, matches MatchGetter, pub Publisher, m *Metrics) *Service {
	v := validator.New()
	// decimal.Decimal é validado como float64 para que gte/lte funcionem
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &Service{
		repo:     repo,
		matches:  matches,
		pub:      pub,
		log:      log,
		metrics:  m,
		validate: v,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// PlaceBet registra uma aposta PLACED contra uma partida existente e ainda não finalizada.
// Nada é persistido se a partida não for encontrada.
func (s *Service) PlaceBet(ctx context.Context, in PlaceBetInput) (bet.Bet, error) {
	in.MatchID = strings.TrimSpace(in.MatchID)
	in.Predicted = strings.ToUpper(strings.TrimSpace(in.Predicted))
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return bet.Bet{}, invalid(err)
	}

	m, err := s.matches.GetMatch(ctx, in.MatchID)
	if err != nil {
		return bet.Bet{}, errors.WithSecondaryError(errors.Wrapf(bet.ErrMatchNotFound, "place bet on match %s", in.MatchID), err)
	}
	if m.Completed() {
		return bet.Bet{}, errors.Wrapf(bet.ErrMatchClosed, "match %s", in.MatchID)
	}

	// grava o id canônico devolvido pelo match-service (o mesmo que sai no match_completed)
	matchID := m.ID
	if matchID == "" {
		matchID = in.MatchID
	}

	b := bet.Bet{
		ID:        s.newID(),
		MatchID:   matchID,
		Predicted: bet.Outcome(in.Predicted),
		Amount:    in.Amount,
		Status:    bet.StatusPlaced,
		PlacedAt:  s.now(),
	}
	saved, err := s.repo.Save(ctx, b)
	if err != nil {
		return bet.Bet{}, errors.Wrap(err, "place bet")
	}

	s.metrics.BetsPlaced.Inc()
	s.log.Info("bet placed",
		zap.String("bet_id", saved.ID),
		zap.String("match_id", saved.MatchID),
		zap.String("predicted", string(saved.Predicted)),
	)

	if err := s.pub.PublishBetPlaced(ctx, events.BetPlaced{
		BetID:     saved.ID,
		MatchID:   saved.MatchID,
		Predicted: string(saved.Predicted),
		Amount:    saved.Amount.String(),
		PlacedAt:  saved.PlacedAt,
	}); err != nil {
		s.log.Warn("publish bet_placed failed", zap.String("bet_id", saved.ID), zap.Error(err))
	}
	return saved, nil
}

// ResolveBet resolve a aposta contra o placar final da partida.
// Aposta já resolvida volta inalterada, sem escrita; partida não finalizada não altera nada.
func (s *Service) ResolveBet(ctx context.Context, id string) (bet.Bet, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return bet.Bet{}, errors.Wrapf(err, "resolve bet %s", id)
	}
	if b.Resolved() {
		return b, nil
	}

	m, err := s.matches.GetMatch(ctx, b.MatchID)
	if err != nil {
		return bet.Bet{}, errors.WithSecondaryError(errors.Wrapf(bet.ErrMatchNotFound, "resolve bet %s", id), err)
	}
	if !m.Completed() {
		return bet.Bet{}, errors.Wrapf(bet.ErrMatchNotPlayed, "match %s is %s", m.ID, m.Status)
	}

	at := s.now()
	b.Status = bet.Resolve(m.HomeScore, m.AwayScore, b.Predicted)
	b.ResolvedAt = &at

	saved, err := s.repo.Save(ctx, b)
	if err != nil {
		return bet.Bet{}, errors.Wrapf(err, "resolve bet %s", id)
	}

	s.metrics.BetsResolved.WithLabelValues(string(saved.Status)).Inc()
	s.log.Info("bet resolved",
		zap.String("bet_id", saved.ID),
		zap.String("match_id", saved.MatchID),
		zap.String("status", string(saved.Status)),
	)

	if err := s.pub.PublishBetResolved(ctx, events.BetResolved{
		BetID:      saved.ID,
		MatchID:    saved.MatchID,
		Status:     string(saved.Status),
		ResolvedAt: at,
	}); err != nil {
		s.log.Warn("publish bet_resolved failed", zap.String("bet_id", saved.ID), zap.Error(err))
	}
	return saved, nil
}

// ListBets lista apostas; status desconhecido no filtro é erro de validação
func (s *Service) ListBets(ctx context.Context, f bet.Filter) ([]bet.Bet, error) {
	f.Status = bet.Status(strings.ToUpper(strings.TrimSpace(string(f.Status))))
	f.MatchID = strings.TrimSpace(f.MatchID)
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid(errors.Newf("unknown status %q", f.Status))
	}

	bets, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list bets")
	}
	return bets, nil
}

// invalid deixa ErrInvalid na cadeia de Unwrap; o erro do validator vira detalhe da mensagem
func invalid(err error) error {
	return errors.WithSecondaryError(errors.Wrapf(bet.ErrInvalid, "%v", err), err)
}
