// Package metrics defines all custom Prometheus metrics for the FYP portal
// directory service. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// AccountsCreatedTotal counts newly registered accounts.
// Label:
//   - role: the role tag applied at creation ("student", "supervisor", "admin", "public")
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// SupervisorsCreatedTotal counts new supervisor roster entries.
var SupervisorsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "supervisors_created_total",
		Help:      "Total number of supervisor roster entries created.",
	},
)

// WritesRejectedTotal counts directory writes rejected before or by the store.
// Labels:
//   - entity: "account" or "supervisor"
//   - reason: "validation" (constraint failed before the write) or
//     "duplicate" (unique index rejected the write)
var WritesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_writes_rejected_total",
		Help:      "Total number of rejected directory writes, by entity and reason.",
	},
	[]string{"entity", "reason"},
)

// RecordsDeletedTotal counts explicit administrative deletions.
// Label:
//   - entity: "account" or "supervisor"
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_records_deleted_total",
		Help:      "Total number of directory records deleted, by entity.",
	},
	[]string{"entity"},
)
