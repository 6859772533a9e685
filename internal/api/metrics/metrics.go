// Package metrics defines the custom Prometheus metrics of the blog API.
// They are registered with the default registry on package init through
// promauto and exposed on /metrics next to the echoprometheus HTTP metrics.
// Register adds them to any other registry the router is given.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// Guard label values.
const (
	GuardAuthenticated = "authenticated"
	GuardAdmin         = "admin"
)

// AuthRejectionsTotal counts requests turned away by an authorization guard.
// Label:
//   - guard: "authenticated" or "admin"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by an authorization guard.",
	},
	[]string{"guard"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "user" or "admin"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of self-service user registrations.",
	},
)

var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of blog posts created.",
	},
)

var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// ObserveLogin records one login attempt.
func ObserveLogin(kind string, ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	LoginsTotal.WithLabelValues(kind, result).Inc()
}

// RejectAuth records one guard rejection.
func RejectAuth(guard string) {
	AuthRejectionsTotal.WithLabelValues(guard).Inc()
}

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AuthRejectionsTotal,
		LoginsTotal,
		RegistrationsTotal,
		PostsCreatedTotal,
		CommentsCreatedTotal,
	}
}

// Register adds the custom metrics to reg. Metrics already present in reg
// are skipped.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
