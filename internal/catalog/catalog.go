package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/dsl"
)

// ErrNotFound is returned when no entry has the requested name.
var ErrNotFound = errors.New("automaton not found")

// Entry is a named, documented automaton.
type Entry struct {
	Name        string
	Description string
	build       func() *dsl.Builder
}

// Build constructs a fresh automaton for the entry.
func (e Entry) Build() (*automaton.Automaton, error) {
	a, err := e.build().Build()
	if err != nil {
		return nil, fmt.Errorf("catalog entry %q: %w", e.Name, err)
	}
	return a, nil
}

var entries = []Entry{
	{
		Name:        "lab",
		Description: "NFA over {a,b} accepting strings with at least two b's",
		build: func() *dsl.Builder {
			b := dsl.New()
			b.Add("q0").Start().On("a", "q0").On("b", "q0", "q1")
			b.Add("q1").On("a", "q1").On("b", "q2")
			b.Add("q2").Accept().On("a", "q2")
			return b
		},
	},
	{
		Name:        "unreachable-accept",
		Description: "DFA whose accept state cannot be reached from the start state",
		build: func() *dsl.Builder {
			b := dsl.New()
			b.Add("q0").Start().On("a", "q0").On("b", "q0")
			b.Add("q1").On("b", "q2").On("a", "q1")
			b.Add("q2").Accept().On("a", "q2")
			return b
		},
	},
	{
		Name:        "ends-with-ab",
		Description: "epsilon-NFA for (a|b)*ab",
		build: func() *dsl.Builder {
			b := dsl.New()
			b.Add("p0").Start().Epsilon("p1")
			b.Add("p1").On("a", "p1").On("b", "p1").Epsilon("p2")
			b.Add("p2").On("a", "p3")
			b.Add("p3").On("b", "p4")
			b.Add("p4").Accept()
			return b
		},
	},
	{
		Name:        "binary-mod3",
		Description: "DFA over {0,1} accepting binary numerals divisible by three",
		build: func() *dsl.Builder {
			b := dsl.New()
			b.Add("r0").Start().Accept().On("0", "r0").On("1", "r1")
			b.Add("r1").On("0", "r2").On("1", "r0")
			b.Add("r2").On("0", "r1").On("1", "r2")
			return b
		},
	},
}

// Names returns the entry names in sorted order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	slices.Sort(names)
	return names
}

// Lookup returns the entry called name.
func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q (available: %v)", ErrNotFound, name, Names())
}

// Load looks up name and builds its automaton.
func Load(name string) (*automaton.Automaton, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Build()
}
