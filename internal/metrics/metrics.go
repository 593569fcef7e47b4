// Package metrics exposes the service counters on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LeadsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fontaneria_leads_received_total",
		Help: "Accepted lead submissions by kind.",
	}, []string{"kind"})

	SpamRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fontaneria_spam_rejected_total",
		Help: "Submissions rejected by the honeypot policy.",
	})

	OrdersReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fontaneria_orders_received_total",
		Help: "Accepted shop orders.",
	})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fontaneria_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fontaneria_emails_sent_total",
		Help: "Transactional emails handed to the provider, by outcome.",
	}, []string{"outcome"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
