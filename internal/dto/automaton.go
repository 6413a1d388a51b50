package dto

import (
	"github.com/aretw0/automata/pkg/automaton"
)

// Automaton is the export shape of an automaton.
// It is a read-only projection used by describe; nothing decodes it back.
type Automaton struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	States      []string     `json:"states" yaml:"states"`
	Alphabet    []string     `json:"alphabet" yaml:"alphabet"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
	Start       string       `json:"start" yaml:"start"`
	Accept      []string     `json:"accept" yaml:"accept"`

	Deterministic bool `json:"deterministic" yaml:"deterministic"`
	Epsilon       bool `json:"epsilon" yaml:"epsilon"`
}

// Transition is one (state, symbol) entry. An empty On is a silent move.
type Transition struct {
	From string   `json:"from" yaml:"from"`
	On   string   `json:"on" yaml:"on"`
	To   []string `json:"to" yaml:"to"`
}

// FromAutomaton projects a into its export shape, in sorted order.
func FromAutomaton(name string, a *automaton.Automaton) Automaton {
	out := Automaton{
		Name:          name,
		States:        labels(a.States()),
		Alphabet:      make([]string, 0),
		Transitions:   make([]Transition, 0),
		Start:         string(a.Start()),
		Accept:        labels(a.AcceptStates()),
		Deterministic: a.IsDeterministic(),
		Epsilon:       a.HasEpsilon(),
	}
	for _, sym := range a.Alphabet() {
		out.Alphabet = append(out.Alphabet, string(sym))
	}
	for _, e := range a.Edges() {
		out.Transitions = append(out.Transitions, Transition{
			From: string(e.From),
			On:   string(e.On),
			To:   labels(a.Targets(e.From, e.On)),
		})
	}
	return out
}

func labels(set automaton.StateSet) []string {
	out := make([]string, 0, set.Len())
	for _, st := range set.Sorted() {
		out = append(out, string(st))
	}
	return out
}
