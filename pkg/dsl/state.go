package dsl

import "github.com/aretw0/automata/pkg/automaton"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	id      automaton.State
	builder *Builder
	start   bool
	accept  bool
	symbols []automaton.Symbol // insertion order of moves
	moves   map[automaton.Symbol][]automaton.State
}

// Start marks the state as the start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.start = true
	return s
}

// Accept marks the state as an accept state.
func (s *StateBuilder) Accept() *StateBuilder {
	s.accept = true
	return s
}

// On adds transitions consuming sym to every target.
// Targets that are not yet declared are added as plain states.
func (s *StateBuilder) On(sym automaton.Symbol, targets ...automaton.State) *StateBuilder {
	if _, ok := s.moves[sym]; !ok {
		s.symbols = append(s.symbols, sym)
		s.moves[sym] = []automaton.State{}
	}
	s.moves[sym] = append(s.moves[sym], targets...)
	for _, t := range targets {
		s.builder.Add(t)
	}
	return s
}

// Epsilon adds silent transitions to every target.
func (s *StateBuilder) Epsilon(targets ...automaton.State) *StateBuilder {
	return s.On(automaton.Epsilon, targets...)
}

// Then returns the builder of another state, declaring it if needed.
// It keeps long chains readable.
func (s *StateBuilder) Then(id automaton.State) *StateBuilder {
	return s.builder.Add(id)
}
