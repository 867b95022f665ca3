// Package metrics defines all custom Prometheus metrics for the materials
// inventory API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry via promauto
// at package load; the HTTP middleware metrics are added separately by
// echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", "pending", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful worker registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of worker accounts registered.",
	},
)

// ApprovalsTotal counts successful worker approvals.
var ApprovalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approvals_total",
		Help:      "Total number of worker accounts approved.",
	},
)

// RemovalsTotal counts successful worker removals.
var RemovalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "removals_total",
		Help:      "Total number of worker accounts removed.",
	},
)

// PasswordChangesTotal counts successful administrator credential rotations.
var PasswordChangesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of administrator password changes.",
	},
)
