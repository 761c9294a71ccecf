// Package metrics defines and registers all custom Prometheus metrics for the
// QuickRide auth API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quickride"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - kind: "user" or "captain"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of principals registered, by kind.",
	},
	[]string{"kind"},
)

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - kind: "user" or "captain"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// AuthRejectionsTotal counts auth gate rejections. The reason label is for
// operators only; clients always see the same 401.
// Label:
//   - reason: "missing_token", "revoked", "invalid_token", "unknown_principal"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// TokensRevokedTotal counts tokens placed on the revocation list at logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens revoked via logout.",
	},
)
