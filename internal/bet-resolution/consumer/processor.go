package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
	"github.com/radieske/match-bet-platform/pkg/contracts/events"
)

// MessageReader é o subconjunto do *kafka.Reader usado pelo processor
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Resolver é o fluxo de resolução do bet-service (service.Service)
type Resolver interface {
	ListBets(ctx context.Context, f bet.Filter) ([]bet.Bet, error)
	ResolveBet(ctx context.Context, id string) (bet.Bet, error)
}

// Processor consome match_completed e resolve as apostas PLACED da partida.
// Falha em uma aposta não interrompe as demais nem o loop.
type Processor struct {
	Log      *zap.Logger
	Reader   MessageReader
	Resolver Resolver

	OnConsumed func()       // métricas (counter++)
	OnResolved func(string) // métricas por status final
	OnError    func(string) // métricas por fase

	// pausa após falha de leitura no Kafka
	Backoff time.Duration
}

// Run inicia o loop de consumo; retorna quando o contexto é cancelado
func (p *Processor) Run(ctx context.Context) error {
	backoff := p.Backoff
	if backoff == 0 {
		backoff = 500 * time.Millisecond
	}

	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			p.fail("read")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var ev events.MatchCompleted
		if err := json.Unmarshal(m.Value, &ev); err != nil || ev.MatchID == "" {
			p.Log.Warn("invalid match_completed message", zap.ByteString("key", m.Key), zap.Error(err))
			p.fail("decode")
			continue
		}

		p.resolveMatch(ctx, ev)
	}
}

// resolveMatch resolve cada aposta PLACED da partida pelo mesmo fluxo do GET /bets/{id}
func (p *Processor) resolveMatch(ctx context.Context, ev events.MatchCompleted) {
	log := p.Log.With(zap.String("match_id", ev.MatchID))

	bets, err := p.Resolver.ListBets(ctx, bet.Filter{Status: bet.StatusPlaced, MatchID: ev.MatchID})
	if err != nil {
		log.Warn("list placed bets failed", zap.Error(err))
		p.fail("list")
		return
	}

	resolved := 0
	for _, b := range bets {
		out, err := p.Resolver.ResolveBet(ctx, b.ID)
		if err != nil {
			log.Warn("resolve bet failed", zap.String("bet_id", b.ID), zap.Error(err))
			p.fail("resolve")
			continue
		}
		resolved++
		if p.OnResolved != nil {
			p.OnResolved(string(out.Status))
		}
	}

	log.Info("match bets resolved",
		zap.Int("placed", len(bets)),
		zap.Int("resolved", resolved),
	)
}

func (p *Processor) fail(stage string) {
	if p.OnError != nil {
		p.OnError(stage)
	}
}
