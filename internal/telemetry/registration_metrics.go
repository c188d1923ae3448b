// Package telemetry exposes Prometheus metrics for the registration flow.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for SubmissionsTotal.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
)

// RegistrationMetrics holds Prometheus metrics for form interaction and
// submission. A nil *RegistrationMetrics is valid and records nothing.
type RegistrationMetrics struct {
	// Field feedback
	FieldValidations *prometheus.CounterVec
	PasswordStrength *prometheus.CounterVec

	// Dependent dropdowns
	CascadeUpdates *prometheus.CounterVec

	// Submission
	Submissions          *prometheus.CounterVec
	SubmissionFieldFails *prometheus.CounterVec
	SinkFailures         prometheus.Counter
	Resets               prometheus.Counter
}

// NewRegistrationMetrics creates all registration metrics and registers them
// with reg. A nil reg registers with the default registry.
func NewRegistrationMetrics(namespace string, reg prometheus.Registerer) *RegistrationMetrics {
	if namespace == "" {
		namespace = "signup"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)
	subsystem := "registration"

	return &RegistrationMetrics{
		// =======================================================================
		// Field Feedback
		// =======================================================================
		FieldValidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "field_validations_total",
				Help:      "Total field validations triggered by user edits",
			},
			[]string{"field", "result"}, // result: valid, invalid
		),
		PasswordStrength: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "password_strength_total",
				Help:      "Total password strength classifications by tier",
			},
			[]string{"tier"}, // tier: weak, medium, strong
		),

		// =======================================================================
		// Dependent Dropdowns
		// =======================================================================
		CascadeUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cascade_updates_total",
				Help:      "Total dependent dropdown refreshes",
			},
			[]string{"source"}, // source: country, state
		),

		// =======================================================================
		// Submission
		// =======================================================================
		Submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "submissions_total",
				Help:      "Total submission attempts by outcome",
			},
			[]string{"outcome"}, // outcome: accepted, rejected, conflict
		),
		SubmissionFieldFails: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "submission_field_failures_total",
				Help:      "Total fields failing at submit time",
			},
			[]string{"field", "reason"},
		),
		SinkFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sink_failures_total",
				Help:      "Total accepted registrations the sink failed to take",
			},
		),
		Resets: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "resets_total",
				Help:      "Total form resets after an accepted submission",
			},
		),
	}
}

// ObserveField records one field validation.
func (m *RegistrationMetrics) ObserveField(field string, valid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.FieldValidations.WithLabelValues(field, result).Inc()
}

// ObserveStrength records a password strength tier. Empty tiers are skipped.
func (m *RegistrationMetrics) ObserveStrength(tier string) {
	if m == nil || tier == "" {
		return
	}
	m.PasswordStrength.WithLabelValues(tier).Inc()
}

func (m *RegistrationMetrics) ObserveCascade(source string) {
	if m == nil {
		return
	}
	m.CascadeUpdates.WithLabelValues(source).Inc()
}

func (m *RegistrationMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}

func (m *RegistrationMetrics) ObserveSubmitFailure(field, reason string) {
	if m == nil {
		return
	}
	m.SubmissionFieldFails.WithLabelValues(field, reason).Inc()
}

func (m *RegistrationMetrics) ObserveSinkFailure() {
	if m == nil {
		return
	}
	m.SinkFailures.Inc()
}

func (m *RegistrationMetrics) ObserveReset() {
	if m == nil {
		return
	}
	m.Resets.Inc()
}
