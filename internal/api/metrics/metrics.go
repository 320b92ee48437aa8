// Package metrics defines the custom Prometheus metrics for the HR API. It is
// the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hrapi"

// LoginAttemptsTotal counts login requests by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "validation_error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ValidationFailuresTotal counts mutating requests rejected by the rule engine.
// Label:
//   - resource: "employee", "user", or "login"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by field validation.",
	},
	[]string{"resource"},
)

// TokenVerificationsTotal counts bearer-token checks by the auth filter.
// Label:
//   - result: "ok", "missing", "invalid", or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, labelled by result.",
	},
	[]string{"result"},
)
