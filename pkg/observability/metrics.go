package observability

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "automata"

// Metrics holds the Prometheus collectors fed by Hooks.
type Metrics struct {
	Conversions        prometheus.Counter
	ConversionDuration prometheus.Histogram
	DFAStates          prometheus.Histogram
	MembershipChecks   *prometheus.CounterVec
	Grammars           prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Total number of NFA to DFA conversions",
		}),
		ConversionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Duration of subset constructions",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		DFAStates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dfa_states",
			Help:      "Number of state-sets discovered per conversion",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		MembershipChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_checks_total",
			Help:      "Total number of membership tests by result",
		}, []string{"result"}),
		Grammars: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grammars_total",
			Help:      "Total number of derived grammars",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.Conversions, m.ConversionDuration, m.DFAStates, m.MembershipChecks, m.Grammars,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnConvert: func(e *ConvertEvent) {
			m.Conversions.Inc()
			m.ConversionDuration.Observe(e.Duration.Seconds())
			m.DFAStates.Observe(float64(e.ResultStates))
		},
		OnMembership: func(e *MembershipEvent) {
			result := "rejected"
			if e.Accepted {
				result = "accepted"
			}
			m.MembershipChecks.WithLabelValues(result).Inc()
		},
		OnGrammar: func(*GrammarEvent) {
			m.Grammars.Inc()
		},
	}
}

// WriteText writes every family gathered from g in the text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
