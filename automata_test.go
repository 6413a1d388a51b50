package automata_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/dsl"
	"github.com/aretw0/automata/pkg/observability"
)

func labNFA(t *testing.T) *automaton.Automaton {
	t.Helper()
	b := dsl.New()
	b.Add("q0").Start().On("a", "q0").On("b", "q0", "q1")
	b.Add("q1").On("a", "q1").On("b", "q2")
	b.Add("q2").Accept().On("a", "q2")
	a, err := b.Build()
	require.NoError(t, err)
	return a
}

func TestEngine_Convert_FiresHooks(t *testing.T) {
	var got *observability.ConvertEvent
	eng := automata.New(automata.WithHooks(observability.Hooks{
		OnConvert: func(e *observability.ConvertEvent) { got = e },
	}))

	dfa := eng.Convert(labNFA(t))
	require.NotNil(t, got)
	assert.Equal(t, observability.EventConvert, got.Type)
	assert.Equal(t, 3, got.SourceStates)
	assert.Equal(t, 3, got.ResultStates)
	assert.False(t, got.Epsilon)
	assert.GreaterOrEqual(t, got.Duration, time.Duration(0))
	assert.True(t, dfa.IsDeterministic())
}

func TestEngine_Accepts_WarnsOnNFA(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var events []*observability.MembershipEvent
	eng := automata.New(
		automata.WithLogger(logger),
		automata.WithHooks(observability.Hooks{
			OnMembership: func(e *observability.MembershipEvent) { events = append(events, e) },
		}),
	)

	nfa := labNFA(t)
	eng.Accepts(nfa, "bb")
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	assert.True(t, eng.Accepts(eng.Convert(nfa), "bb"))
	assert.NotContains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "membership_checked")

	require.Len(t, events, 2)
	assert.False(t, events[0].Deterministic)
	assert.True(t, events[1].Deterministic)
	assert.True(t, events[1].Accepted)
}

func TestEngine_Grammar(t *testing.T) {
	var productions int
	eng := automata.New(automata.WithHooks(observability.Hooks{
		OnGrammar: func(e *observability.GrammarEvent) { productions = e.Productions },
	}))

	g := eng.Grammar(labNFA(t))
	assert.Equal(t, "S", g.Start)
	assert.Equal(t, 8, productions)
	assert.Equal(t, "S -> q0", g.Productions[0].String())
}

func TestEngine_WithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	eng := automata.New(automata.WithHooks(m.Hooks()))
	dfa := eng.Convert(labNFA(t))
	eng.Accepts(dfa, "bb")
	eng.Accepts(dfa, "ab")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MembershipChecks.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MembershipChecks.WithLabelValues("rejected")))
}

func TestEngine_Inspect(t *testing.T) {
	eng := automata.New()
	r := eng.Inspect(labNFA(t))
	assert.Equal(t, automata.Report{
		States:        3,
		Symbols:       2,
		Edges:         5,
		AcceptStates:  1,
		Deterministic: false,
		Epsilon:       false,
	}, r)
}
