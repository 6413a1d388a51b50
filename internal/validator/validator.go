package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
)

// Findings lists structural oddities of an automaton.
// None of them make the automaton invalid; they are reported for inspection.
type Findings struct {
	// Unreachable states cannot be entered from the start state.
	Unreachable []automaton.State
	// Dead states cannot reach any accept state.
	Dead []automaton.State
	// EmptyLanguage is set when no accept state is reachable at all.
	EmptyLanguage bool
}

// Analyze crawls a from its start state, following symbol and epsilon moves alike.
func Analyze(a *automaton.Automaton) Findings {
	reachable := Reachable(a)
	productive := Productive(a)

	var f Findings
	for _, st := range a.States().Sorted() {
		if !reachable.Has(st) {
			f.Unreachable = append(f.Unreachable, st)
		}
		if !productive.Has(st) {
			f.Dead = append(f.Dead, st)
		}
	}
	f.EmptyLanguage = !productive.Has(a.Start())
	return f
}

// Err summarizes the findings as an error, or returns nil when there are none.
func (f Findings) Err() error {
	var problems []string
	for _, st := range f.Unreachable {
		problems = append(problems, fmt.Sprintf("Unreachable state: '%s'", st))
	}
	for _, st := range f.Dead {
		problems = append(problems, fmt.Sprintf("Dead state: '%s'", st))
	}
	if f.EmptyLanguage {
		problems = append(problems, "No accept state is reachable from the start state")
	}
	if len(problems) > 0 {
		return fmt.Errorf("found %d issues:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

// Reachable returns every state reachable from the start state.
func Reachable(a *automaton.Automaton) automaton.StateSet {
	successors := make(map[automaton.State][]automaton.State)
	for _, e := range a.Edges() {
		successors[e.From] = append(successors[e.From], a.Targets(e.From, e.On).Sorted()...)
	}
	return crawl(successors, a.Start())
}

// Productive returns every state from which an accept state is reachable.
func Productive(a *automaton.Automaton) automaton.StateSet {
	predecessors := make(map[automaton.State][]automaton.State)
	for _, e := range a.Edges() {
		for _, to := range a.Targets(e.From, e.On).Sorted() {
			predecessors[to] = append(predecessors[to], e.From)
		}
	}
	return crawl(predecessors, a.AcceptStates().Sorted()...)
}

// crawl runs a breadth-first search over next from the given roots.
func crawl(next map[automaton.State][]automaton.State, roots ...automaton.State) automaton.StateSet {
	visited := automaton.NewStateSet()
	queue := append([]automaton.State(nil), roots...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !visited.Add(current) {
			continue
		}
		for _, target := range next[current] {
			if !visited.Has(target) {
				queue = append(queue, target)
			}
		}
	}
	return visited
}
