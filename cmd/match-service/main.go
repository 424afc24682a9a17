package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	mhttp "github.com/radieske/match-bet-platform/internal/match-service/http"
	"github.com/radieske/match-bet-platform/internal/match-service/producer"
	"github.com/radieske/match-bet-platform/internal/match-service/repo"
	"github.com/radieske/match-bet-platform/internal/match-service/service"
	"github.com/radieske/match-bet-platform/internal/match-service/ws"
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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	checks := metrics.Checks{}

	// Armazenamento: Postgres (default) ou memória
	var repository service.Repository
	switch cfg.StorageDriver {
	case config.StorageMemory:
		repository = repo.NewMemory()
		log.Warn("using in-memory storage; data is lost on restart")
	default:
		if cfg.AutoMigrate {
			if err := db.MigrateUp(cfg.PostgresDSN); err != nil {
				log.Fatal("migrate", zap.Error(err))
			}
		}
		pg, err := db.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal("postgres connect", zap.Error(err))
		}
		defer pg.Close()
		repository = repo.NewPostgres(pg)
		checks["postgres"] = pg.PingContext
	}

	// Kafka (match_completed); sem brokers os eventos são descartados
	var pub service.Publisher = producer.Noop{}
	if cfg.KafkaBrokers != "" {
		w := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicMatchCompleted)
		defer w.Close()
		pub = producer.NewKafkaPublisher(w)
	} else {
		log.Warn("KAFKA_BROKERS empty; match_completed events disabled")
	}

	// Feed de resultados via WebSocket; com Redis o broadcast passa pelo Pub/Sub (várias réplicas)
	hub := ws.NewHub(log, func(*http.Request) bool { return true })
	var feed service.Broadcaster = hub
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal("redis connect", zap.Error(err))
		}
		defer rdb.Close()
		ws.StartRedisSubscriber(ctx, log, rdb, hub)
		feed = ws.NewRedisFanout(log, rdb, hub)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	svc := service.New(log, repository, pub, feed, service.NewMetrics(prometheus.DefaultRegisterer))
	api := mhttp.NewServer(log, svc, hub.HandleWS)

	apiSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, checks)

	go func() {
		log.Info("match-service listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("api", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
	defer done()
	_ = apiSrv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
}
