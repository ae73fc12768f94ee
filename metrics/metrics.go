package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fozi_commands_total",
			Help: "Total number of slash commands handled labeled by command and status",
		},
		[]string{"command", "status"},
	)
	commandDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fozi_command_duration_seconds",
			Help:    "Duration of slash command handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
	balanceChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fozi_balance_changes_total",
			Help: "Total number of balance changes labeled by transaction type",
		},
		[]string{"transaction_type"},
	)
	ballsMovedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fozi_balls_moved_total",
			Help: "Total amount of currency moved labeled by transaction type",
		},
		[]string{"transaction_type"},
	)
	accountsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fozi_accounts_created_total",
			Help: "Total number of accounts created",
		},
	)
)

// RecordCommand increments the command counter and records its duration
func RecordCommand(command, status string, duration time.Duration) {
	if command == "" {
		command = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	commandsTotal.WithLabelValues(command, status).Inc()
	commandDurationSeconds.WithLabelValues(command).Observe(duration.Seconds())
}
