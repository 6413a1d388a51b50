package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/automata/pkg/automaton"
)

var (
	// ErrNoStart is returned when no state was marked with Start.
	ErrNoStart = errors.New("no start state")

	// ErrMultipleStarts is returned when more than one state was marked with Start.
	ErrMultipleStarts = errors.New("multiple start states")
)

// Builder manages the automaton construction.
type Builder struct {
	states   map[automaton.State]*StateBuilder
	order    []automaton.State
	alphabet []automaton.Symbol
	explicit bool
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states: make(map[automaton.State]*StateBuilder),
	}
}

// Alphabet declares the input symbols explicitly.
// Symbols that no transition uses are still part of the alphabet.
func (b *Builder) Alphabet(symbols ...automaton.Symbol) *Builder {
	b.alphabet = append(b.alphabet, symbols...)
	b.explicit = true
	return b
}

// Add declares a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(id automaton.State) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{
		id:      id,
		builder: b,
		moves:   make(map[automaton.Symbol][]automaton.State),
	}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build validates the declarations and returns the automaton.
func (b *Builder) Build() (*automaton.Automaton, error) {
	var (
		start       automaton.State
		starts      int
		accept      []automaton.State
		transitions = make(map[automaton.Edge][]automaton.State)
		used        []automaton.Symbol
		usedSeen    = make(map[automaton.Symbol]bool)
	)

	for _, id := range b.order {
		sb := b.states[id]
		if sb.start {
			start = id
			starts++
		}
		if sb.accept {
			accept = append(accept, id)
		}
		for _, sym := range sb.symbols {
			transitions[automaton.Edge{From: id, On: sym}] = sb.moves[sym]
			if sym != automaton.Epsilon && !usedSeen[sym] {
				usedSeen[sym] = true
				used = append(used, sym)
			}
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: %d states marked", ErrMultipleStarts, starts)
	}

	alphabet := b.alphabet
	if !b.explicit {
		alphabet = used
	}

	a, err := automaton.New(b.order, alphabet, transitions, start, accept)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return a, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *automaton.Automaton {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}
