package observability_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata/pkg/observability"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	hooks := m.Hooks()
	hooks.OnConvert(&observability.ConvertEvent{ResultStates: 3, Duration: time.Millisecond})
	hooks.OnMembership(&observability.MembershipEvent{Input: "bb", Accepted: true})
	hooks.OnMembership(&observability.MembershipEvent{Input: "b"})
	hooks.OnMembership(&observability.MembershipEvent{Input: "a"})
	hooks.OnGrammar(&observability.GrammarEvent{Productions: 8})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MembershipChecks.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MembershipChecks.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Grammars))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DFAStates))
}

func TestNewMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	m.Hooks().OnGrammar(&observability.GrammarEvent{})

	var buf bytes.Buffer
	require.NoError(t, observability.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "automata_grammars_total 1")
	assert.Contains(t, buf.String(), "# TYPE automata_conversions_total counter")
}

func TestHooks_Merge(t *testing.T) {
	var calls []string
	first := observability.Hooks{
		OnConvert: func(*observability.ConvertEvent) { calls = append(calls, "first") },
	}
	second := observability.Hooks{
		OnConvert: func(*observability.ConvertEvent) { calls = append(calls, "second") },
		OnGrammar: func(*observability.GrammarEvent) { calls = append(calls, "grammar") },
	}

	merged := first.Merge(second)
	merged.OnConvert(&observability.ConvertEvent{})
	merged.OnGrammar(&observability.GrammarEvent{})
	assert.Nil(t, merged.OnMembership)
	assert.Equal(t, []string{"first", "second", "grammar"}, calls)
}
