// Package metrics defines and registers all custom Prometheus metrics for the
// label back-office API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "label"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthDeniedTotal counts requests rejected at the auth boundary.
// Label:
//   - reason: "missing_token", "invalid_token" or "forbidden"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by the auth or RBAC middleware.",
	},
	[]string{"reason"},
)

// UserAdminOpsTotal counts user administration operations that succeeded.
// Label:
//   - op: "create", "update" or "delete"
var UserAdminOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_admin_ops_total",
		Help:      "Total number of successful user administration operations.",
	},
	[]string{"op"},
)

// SocialPostsPublishedTotal counts scheduler publish outcomes.
// Label:
//   - result: "ok" or "error"
var SocialPostsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "social_posts_published_total",
		Help:      "Total number of scheduled social posts processed by the publisher.",
	},
	[]string{"result"},
)

// DashboardCacheTotal counts dashboard stats cache lookups.
// Label:
//   - result: "hit" or "miss"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard stats cache lookups, by result.",
	},
	[]string{"result"},
)
