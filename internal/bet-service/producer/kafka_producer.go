package producer

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/kafka-go"

	skafka "github.com/radieske/match-bet-platform/internal/shared/kafka"
	"github.com/radieske/match-bet-platform/pkg/contracts/events"
)

// KafkaPublisher publica eventos de aposta; um writer por tópico, chave = betId.
// Writer nil desliga o tópico: o worker só publica bet_resolved.
type KafkaPublisher struct {
	Placed   *kafka.Writer
	Resolved *kafka.Writer
}

func NewKafkaPublisher(placed, resolved *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Placed: placed, Resolved: resolved}
}

func (p *KafkaPublisher) PublishBetPlaced(ctx context.Context, e events.BetPlaced) error {
	if p.Placed == nil {
		return nil
	}
	return skafka.WriteJSON(ctx, p.Placed, e.BetID, e)
}

func (p *KafkaPublisher) PublishBetResolved(ctx context.Context, e events.BetResolved) error {
	if p.Resolved == nil {
		return nil
	}
	return skafka.WriteJSON(ctx, p.Resolved, e.BetID, e)
}

// Close fecha os writers configurados
func (p *KafkaPublisher) Close() error {
	var errs []error
	for _, w := range []*kafka.Writer{p.Placed, p.Resolved} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Noop é usado quando KAFKA_BROKERS está vazio
type Noop struct{}

func (Noop) PublishBetPlaced(context.Context, events.BetPlaced) error     { return nil }
func (Noop) PublishBetResolved(context.Context, events.BetResolved) error { return nil }
