package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sendAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "chatpilot_campaign_send_attempts_total",
	Help: "Per-recipient send attempts by outcome (sent, failed).",
}, []string{"outcome"})

var dispatchRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "chatpilot_campaign_dispatch_runs_total",
	Help: "Finished dispatch runs by terminal campaign status.",
}, []string{"status"})
