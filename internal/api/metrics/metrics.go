// Package metrics defines the custom Prometheus metrics of the lawsuit
// tracker API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Build one Metrics per registry with New; the router registers it next to
// the HTTP metrics of echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lawsuit_tracker"

// Label values shared by handlers.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultApplied = "applied"
	ResultIgnored = "ignored"
)

type Metrics struct {
	// RegistrationsTotal counts register calls.
	// Label result: "success" or "failure" (duplicate username, invalid input).
	RegistrationsTotal *prometheus.CounterVec

	// LoginsTotal counts login calls.
	// Label result: "success" or "failure".
	LoginsTotal *prometheus.CounterVec

	// RateLimitedTotal counts auth attempts rejected by the rate limiter.
	RateLimitedTotal prometheus.Counter

	// LawsuitsCreatedTotal counts lawsuits added.
	LawsuitsCreatedTotal prometheus.Counter

	// LawsuitMutationsTotal counts updateLawsuit/deleteLawsuit calls.
	// Labels:
	//   - operation: "update" or "delete"
	//   - result: "applied" when the ownership check matched, "ignored" otherwise
	LawsuitMutationsTotal *prometheus.CounterVec

	// UserDocsCreatedTotal counts document links added.
	UserDocsCreatedTotal prometheus.Counter

	// ThemeSavesTotal counts saveTheme calls that reached storage.
	ThemeSavesTotal prometheus.Counter
}

// New creates and registers all metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RegistrationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Total number of registration attempts, by result.",
		}, []string{"result"}),
		LoginsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Total number of login attempts, by result.",
		}, []string{"result"}),
		RateLimitedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_rate_limited_total",
			Help:      "Total number of register/login attempts rejected by the rate limiter.",
		}),
		LawsuitsCreatedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lawsuits_created_total",
			Help:      "Total number of lawsuits created.",
		}),
		LawsuitMutationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lawsuit_mutations_total",
			Help:      "Total number of lawsuit updates and deletes, by operation and ownership check result.",
		}, []string{"operation", "result"}),
		UserDocsCreatedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "userdocs_created_total",
			Help:      "Total number of user document links created.",
		}),
		ThemeSavesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_saves_total",
			Help:      "Total number of theme saves.",
		}),
	}
}

// Result maps a boolean outcome to ResultSuccess or ResultFailure.
func Result(ok bool) string {
	if ok {
		return ResultSuccess
	}
	return ResultFailure
}

// Applied maps an ownership check outcome to ResultApplied or ResultIgnored.
func Applied(ok bool) string {
	if ok {
		return ResultApplied
	}
	return ResultIgnored
}
