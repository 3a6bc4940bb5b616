// Package metrics owns the portal's Prometheus collectors on a private
// registry. Exposition is up to whoever embeds the portal; nothing here
// listens on a port.
package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	Registry *prometheus.Registry

	// Record-store mutations, labelled by entity and operation.
	Mutations *prometheus.CounterVec

	// Login attempts, labelled by outcome (success|failure|throttled).
	AuthAttempts *prometheus.CounterVec

	// File ingestions, labelled by outcome (success|failure).
	Uploads *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_mutations_total",
				Help: "Total number of record store mutations",
			},
			[]string{"entity", "op"},
		),
		AuthAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_attempts_total",
				Help: "Total number of authentication attempts",
			},
			[]string{"status"},
		),
		Uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "file_uploads_total",
				Help: "Total number of file ingestions",
			},
			[]string{"status"},
		),
	}
	m.Registry.MustRegister(m.Mutations, m.AuthAttempts, m.Uploads)
	return m
}
