package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata/internal/testutils"
	"github.com/aretw0/automata/pkg/automaton"
)

func TestEpsilonClosure(t *testing.T) {
	a := endsWithAB(t)

	t.Run("Follows Chains", func(t *testing.T) {
		got := a.EpsilonClosure(automaton.NewStateSet("p0"))
		assert.Equal(t, []State{"p0", "p1", "p2"}, got.Sorted())
	})

	t.Run("Reflexive And Fixpoint", func(t *testing.T) {
		for st := range a.States() {
			c := a.EpsilonClosure(automaton.NewStateSet(st))
			assert.True(t, c.Has(st))
			assert.True(t, c.Equal(a.EpsilonClosure(c)))
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		in := automaton.NewStateSet("p0")
		a.EpsilonClosure(in)
		assert.Equal(t, 1, in.Len())
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, 0, a.EpsilonClosure(automaton.NewStateSet()).Len())
	})

	t.Run("Terminates On Cycles", func(t *testing.T) {
		c, err := automaton.New(
			[]State{"x", "y", "z"},
			nil,
			map[Edge][]State{
				{From: "x", On: automaton.Epsilon}: {"y"},
				{From: "y", On: automaton.Epsilon}: {"x", "z"},
				{From: "z", On: automaton.Epsilon}: {"z"},
			},
			"x",
			nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []State{"x", "y", "z"}, c.EpsilonClosure(automaton.NewStateSet("x")).Sorted())
	})
}

func TestConvertToDFA_Lab(t *testing.T) {
	nfa := labNFA(t)
	dfa := nfa.ConvertToDFA()

	assert.True(t, dfa.IsDeterministic())
	assert.Equal(t, State("q0"), dfa.Start())
	assert.Equal(t, []State{"q0", "q1", "q2"}, dfa.States().Sorted())
	assert.Equal(t, []State{"q2"}, dfa.AcceptStates().Sorted())
	assert.True(t, dfa.Accepts("bb"))
	assert.False(t, dfa.Accepts("b"))
	assert.True(t, dfa.Accepts("bab"))

	subsets := nfa.SubsetMap()
	assert.Equal(t, []State{"q0"}, subsets["q0"].Sorted())
	assert.Equal(t, []State{"q0", "q1"}, subsets["q1"].Sorted())
	assert.Equal(t, []State{"q0", "q1", "q2"}, subsets["q2"].Sorted())

	// Source untouched.
	assert.False(t, nfa.IsDeterministic())
	assert.Equal(t, automaton.NewStateSet("q0", "q1"), nfa.Targets("q0", "b"))
}

func TestConvertToDFA_LanguageEquivalence(t *testing.T) {
	cases := map[string]*automaton.Automaton{
		"lab":                labNFA(t),
		"unreachable-accept": unreachableAccept(t),
		"ends-with-ab":       endsWithAB(t),
	}
	for name, nfa := range cases {
		t.Run(name, func(t *testing.T) {
			dfa := nfa.ConvertToDFA()
			again := dfa.ConvertToDFA()
			require.True(t, dfa.IsDeterministic())
			require.True(t, again.IsDeterministic())
			assert.False(t, dfa.HasEpsilon())

			testutils.RequireEquivalent(t, nfa, dfa, 7)
			testutils.RequireEquivalent(t, nfa, again, 7)
		})
	}
}

func TestConvertToDFA_EpsilonNFA(t *testing.T) {
	dfa := endsWithAB(t).ConvertToDFA()

	assert.True(t, dfa.Accepts("ab"))
	assert.True(t, dfa.Accepts("bbaab"))
	assert.False(t, dfa.Accepts("aba"))
	assert.False(t, dfa.Accepts(""))
	assert.False(t, dfa.Accepts("abc"))
}

func TestConvertToDFA_NoMovesFromStart(t *testing.T) {
	tests := []struct {
		name   string
		accept []State
		want   bool
	}{
		{"Accepting Start", []State{"q0"}, true},
		{"Rejecting Start", []State{"q1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := automaton.New(
				[]State{"q0", "q1"},
				[]Symbol{"a"},
				map[Edge][]State{{From: "q1", On: "a"}: {"q0"}},
				"q0",
				tt.accept,
			)
			require.NoError(t, err)

			dfa := a.ConvertToDFA()
			assert.Equal(t, 1, dfa.States().Len())
			assert.Empty(t, dfa.Edges())
			assert.Equal(t, tt.want, dfa.Accepts(""))
			assert.False(t, dfa.Accepts("a"))
		})
	}
}

func TestConvertToDFA_DFAIsIsomorphic(t *testing.T) {
	// Multiples of three in binary, every state reachable.
	a, err := automaton.New(
		[]State{"r0", "r1", "r2"},
		[]Symbol{"0", "1"},
		map[Edge][]State{
			{From: "r0", On: "0"}: {"r0"},
			{From: "r0", On: "1"}: {"r1"},
			{From: "r1", On: "0"}: {"r2"},
			{From: "r1", On: "1"}: {"r0"},
			{From: "r2", On: "0"}: {"r1"},
			{From: "r2", On: "1"}: {"r2"},
		},
		"r0",
		[]State{"r0"},
	)
	require.NoError(t, err)

	dfa := a.ConvertToDFA()
	assert.Equal(t, a.States().Len(), dfa.States().Len())
	assert.Len(t, dfa.Edges(), len(a.Edges()))
	assert.Equal(t, 1, dfa.AcceptStates().Len())
	for label, set := range a.SubsetMap() {
		assert.Equal(t, 1, set.Len(), "label %s", label)
	}
	assert.True(t, dfa.Accepts("110"))
	assert.False(t, dfa.Accepts("111"))
}

func TestConvertToDFA_Reproducible(t *testing.T) {
	nfa := endsWithAB(t)
	first := nfa.ConvertToDFA().String()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, nfa.ConvertToDFA().String())
	}
}
