package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	bhttp "github.com/radieske/match-bet-platform/internal/bet-service/http"
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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	checks := metrics.Checks{}

	// Postgres ou memória
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

	// match-service (+ cache Redis de partidas finalizadas, se configurado)
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

	// Kafka (bet_placed / bet_resolved)
	var pub service.Publisher = kpub.Noop{}
	if cfg.KafkaBrokers != "" {
		kp := kpub.NewKafkaPublisher(
			kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetPlaced),
			kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetResolved),
		)
		defer kp.Close()
		pub = kp
	} else {
		log.Warn("KAFKA_BROKERS empty; bet events disabled")
	}

	svc := service.New(log, repository, matches, pub, service.NewMetrics(prometheus.DefaultRegisterer))
	api := bhttp.NewServer(log, svc)

	apiSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, checks)

	go func() {
		log.Info("bet-service listening",
			zap.String("addr", apiSrv.Addr),
			zap.String("match_service", cfg.MatchServiceURL),
		)
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
