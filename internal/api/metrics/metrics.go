// Package metrics defines all custom Prometheus metrics for the account pool
// service. It is the single source of truth for metric names, labels, and
// help strings. Metrics self-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/klorpe/accountpool/internal/core/domain"
)

const namespace = "accountpool"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "bad_request"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// StatusTransitionsTotal counts account status updates that persisted.
// Label:
//   - status: the new status applied ("available" or "used")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of account status updates applied.",
	},
	[]string{"status"},
)

// ImportsTotal counts full-store imports by outcome.
// Label:
//   - result: "ok" or "error"
var ImportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Total number of account imports, labelled by result.",
	},
	[]string{"result"},
)

// PoolSize tracks the current number of records per status, refreshed after
// every mutation.
// Label:
//   - status: "available" or "used"
var PoolSize = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pool_size",
		Help:      "Current number of credential records in the pool, by status.",
	},
	[]string{"status"},
)

// SetPoolSize recounts the pool gauge from a full record listing.
func SetPoolSize(accounts []domain.Account) {
	available, used := 0, 0
	for _, a := range accounts {
		if a.Status == domain.StatusAvailable {
			available++
		} else {
			used++
		}
	}
	PoolSize.WithLabelValues(string(domain.StatusAvailable)).Set(float64(available))
	PoolSize.WithLabelValues(string(domain.StatusUsed)).Set(float64(used))
}
