package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ArticleOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "articles", Name: "operations_total", Help: "Article operations by kind and outcome."},
		[]string{"op", "outcome"},
	)
	CapacityRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "articles", Name: "capacity_rejected_total", Help: "Creates refused because the article cap was reached."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "articles", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "articles", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ArticleOperations)
	reg.MustRegister(CapacityRejected)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
