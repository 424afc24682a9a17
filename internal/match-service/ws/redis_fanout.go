package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
)

// PubSubChannel é o canal Redis usado para distribuir resultados entre réplicas do match-service
const PubSubChannel = "match_updates_broadcast"

// Publisher é o subconjunto do *redis.Client usado pelo RedisFanout
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisFanout publica a partida no Redis em vez de enviar direto ao Hub local;
// cada réplica recebe pelo StartRedisSubscriber e entrega aos seus clientes.
// Se o Redis falhar, entrega só no Hub local.
type RedisFanout struct {
	pub   Publisher
	local *Hub
	log   *zap.Logger
}

func NewRedisFanout(log *zap.Logger, pub Publisher, local *Hub) *RedisFanout {
	return &RedisFanout{pub: pub, local: local, log: log}
}

func (f *RedisFanout) Broadcast(m match.Match) {
	b, err := json.Marshal(m)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		err = f.pub.Publish(ctx, PubSubChannel, b).Err()
	}
	if err != nil {
		f.log.Warn("redis publish failed; broadcasting locally", zap.String("match_id", m.ID), zap.Error(err))
		f.local.Broadcast(m)
	}
}

// StartRedisSubscriber escuta o canal e repassa cada partida ao Hub até o contexto encerrar
func StartRedisSubscriber(ctx context.Context, log *zap.Logger, r *redis.Client, hub *Hub) {
	sub := r.Subscribe(ctx, PubSubChannel)
	ch := sub.Channel()
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				forward(log, hub, msg.Payload)
			}
		}
	}()
}

func forward(log *zap.Logger, hub *Hub, payload string) {
	var m match.Match
	if err := json.Unmarshal([]byte(payload), &m); err != nil || m.ID == "" {
		log.Warn("ws subscriber: invalid payload", zap.Error(err))
		return
	}
	hub.Broadcast(m)
}
