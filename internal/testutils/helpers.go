package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/automata/pkg/automaton"
)

// Words lists every string over alphabet with at most maxLen symbols,
// the empty string included, shortest first.
func Words(alphabet []automaton.Symbol, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for n := 0; n < maxLen; n++ {
		var next []string
		for _, w := range layer {
			for _, s := range alphabet {
				next = append(next, w+string(s))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// Simulate decides membership with set-based NFA semantics, epsilon moves
// included. It is the reference the converted automata are checked against.
func Simulate(a *automaton.Automaton, input string) bool {
	current := a.EpsilonClosure(automaton.NewStateSet(a.Start()))
	for _, r := range input {
		sym := automaton.Symbol(string(r))
		next := automaton.NewStateSet()
		for st := range current {
			for to := range a.Targets(st, sym) {
				next.Add(to)
			}
		}
		current = a.EpsilonClosure(next)
	}
	return current.Intersects(a.AcceptStates())
}

// RequireEquivalent fails the test immediately if dfa.Accepts disagrees with
// Simulate(nfa) on any word up to maxLen symbols over the alphabet of nfa.
func RequireEquivalent(t *testing.T, nfa, dfa *automaton.Automaton, maxLen int) {
	t.Helper()
	for _, w := range Words(nfa.Alphabet(), maxLen) {
		require.Equal(t, Simulate(nfa, w), dfa.Accepts(w), "disagreement on %q", w)
	}
}
