package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os contadores do bet-service
type Metrics struct {
	BetsPlaced   prometheus.Counter
	BetsResolved *prometheus.CounterVec // label: status
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BetsPlaced: f.NewCounter(prometheus.CounterOpts{
			Name: "bet_service_bets_placed_total",
			Help: "apostas registradas",
		}),
		BetsResolved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bet_service_bets_resolved_total",
			Help: "apostas resolvidas por status final",
		}, []string{"status"}),
	}
}
