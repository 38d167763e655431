// Package metrics defines and registers the custom Prometheus metrics for the
// BlogIt API. It is the single source of truth for metric names, labels, and
// help strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blogit"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionRevocationsTotal counts tokens placed on the logout denylist.
var SessionRevocationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_revocations_total",
		Help:      "Total number of session tokens revoked at logout.",
	},
)

// BlogsCreatedTotal counts newly created posts.
var BlogsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blogs_created_total",
		Help:      "Total number of blog posts created.",
	},
)

// BlogsDeletedTotal counts posts soft-deleted by their authors.
var BlogsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blogs_deleted_total",
		Help:      "Total number of blog posts soft-deleted.",
	},
)

// UploadsPresignedTotal counts presigned image upload URLs handed out.
var UploadsPresignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_presigned_total",
		Help:      "Total number of presigned image upload URLs issued.",
	},
)
