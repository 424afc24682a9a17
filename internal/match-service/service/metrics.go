package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	MatchesCompleted prometheus.Counter
}

// NewMetrics registra os contadores no registry informado (prometheus.DefaultRegisterer em produção)
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		MatchesCompleted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "match_service_matches_completed_total",
			Help: "partidas com resultado registrado",
		}),
	}
}
