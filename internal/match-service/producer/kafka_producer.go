package producer

import (
	"context"

	"github.com/segmentio/kafka-go"

	skafka "github.com/radieske/match-bet-platform/internal/shared/kafka"
	"github.com/radieske/match-bet-platform/pkg/contracts/events"
)

// KafkaPublisher publica eventos do match-service; a chave é o matchId
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(w *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: w}
}

func (p *KafkaPublisher) PublishMatchCompleted(ctx context.Context, e events.MatchCompleted) error {
	return skafka.WriteJSON(ctx, p.Writer, e.MatchID, e)
}

// Noop é usado quando KAFKA_BROKERS está vazio
type Noop struct{}

func (Noop) PublishMatchCompleted(context.Context, events.MatchCompleted) error { return nil }
