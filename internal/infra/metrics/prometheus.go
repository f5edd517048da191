// Package metrics exposes account operation counters in Prometheus format.
package metrics

import (
	"net/http"

	"morrison/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "morrison"

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Handler serves the registry at /metrics.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

type authMetrics struct {
	registrations  *prometheus.CounterVec
	logins         *prometheus.CounterVec
	profileUpdates *prometheus.CounterVec
	moderation     *prometheus.CounterVec
}

// NewAuthMetrics registers the account counters on registry.
func NewAuthMetrics(registry *prometheus.Registry) service.AuthMetrics {
	m := &authMetrics{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Account registrations by outcome.",
		}, []string{"outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		profileUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_updates_total",
			Help:      "Profile updates by outcome.",
		}, []string{"outcome"}),
		moderation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_actions_total",
			Help:      "Moderation flag changes by flag and outcome.",
		}, []string{"flag", "outcome"}),
	}

	registry.MustRegister(m.registrations, m.logins, m.profileUpdates, m.moderation)

	return m
}

func (m *authMetrics) Registration(outcome string) {
	m.registrations.WithLabelValues(outcome).Inc()
}

func (m *authMetrics) Login(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *authMetrics) ProfileUpdate(outcome string) {
	m.profileUpdates.WithLabelValues(outcome).Inc()
}

func (m *authMetrics) Moderation(flag string, outcome string) {
	m.moderation.WithLabelValues(flag, outcome).Inc()
}
