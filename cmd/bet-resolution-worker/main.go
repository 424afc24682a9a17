package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/bet-resolution/consumer"
	"github.com/radieske/match-bet-platform/internal/bet-service/matchapi"
	kpub "github.com/radieske/match-bet-platform/internal/bet-service/producer"
	"github.com/radieske/match-bet-platform/internal/bet-service/repo"
	"github.com/radieske/match-bet-platform/internal/bet-service/service"
	"github.com/radieske/match-bet-platform/internal/shared/cache"
	"github.com/radieske/match-bet-platform/internal/shared/config"
	"github.com/radieske/match-bet-platform/internal/shared/db"
	"github.com/radieske/match-bet-platform/internal/shared/kafka"
	"github.com/radieske/match-bet-platform/internal/shared/logger"
	"github.com/radieske/match-bet-platform/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.KafkaBrokers == "" {
		log.Fatal("KAFKA_BROKERS is required for the resolution worker")
	}

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// O worker grava nas mesmas apostas do bet-service, então só faz sentido com Postgres
	pg, err := db.ConnectPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()
	checks := metrics.Checks{"postgres": pg.PingContext}

	var matches service.MatchGetter = matchapi.New(cfg.MatchServiceURL, cfg.MatchClientTimeout)
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal("redis connect", zap.Error(err))
		}
		defer rdb.Close()
		matches = matchapi.NewCachedClient(log, matches, rdb, cfg.MatchCacheTTL)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	// o worker nunca cria apostas: só o writer de bet_resolved
	pub := kpub.NewKafkaPublisher(nil, kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetResolved))
	defer pub.Close()

	// Reutiliza o fluxo de resolução do bet-service (mesmas regras do GET /bets/{id})
	svc := service.New(log, repo.NewPostgres(pg), matches, pub, service.NewMetrics(prometheus.DefaultRegisterer))

	// Kafka consumer (consumer group bet-resolution)
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicMatchCompleted, "bet-resolution")
	defer reader.Close()

	// Métricas Prometheus do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "bet_resolution_messages_consumed_total", Help: "mensagens match_completed consumidas"})
	resolved := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "bet_resolution_bets_resolved_total", Help: "apostas resolvidas pelo worker"}, []string{"status"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "bet_resolution_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, resolved, errorsBy)

	proc := &consumer.Processor{
		Log:        log,
		Reader:     reader,
		Resolver:   svc,
		OnConsumed: func() { consumed.Inc() },
		OnResolved: func(status string) { resolved.WithLabelValues(status).Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, checks)
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}()

	log.Info("bet-resolution-worker started",
		zap.String("consume", cfg.TopicMatchCompleted),
		zap.String("publish", cfg.TopicBetResolved),
	)
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("processor stopped with error", zap.Error(err))
	}
	log.Info("bet-resolution-worker stopped")
}
