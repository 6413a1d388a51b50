package automaton

import (
	"slices"
	"strings"
)

// DefaultStartSymbol is the grammar start symbol used unless it collides
// with a state label.
const DefaultStartSymbol = "S"

// Production is a single grammar rule Head -> Body.
type Production struct {
	Head string
	Body string
}

func (p Production) String() string {
	return p.Head + " -> " + p.Body
}

// Grammar is a right-regular grammar derived from an automaton.
type Grammar struct {
	// Start is the start symbol; it never equals a state label.
	Start string
	// Productions lists the initial Start -> start-state rule first, then the
	// remaining rules deduplicated and sorted by their text.
	Productions []Production
}

// String renders one production per line, each line terminated by a newline.
func (g *Grammar) String() string {
	var sb strings.Builder
	for _, p := range g.Productions {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RegularGrammar derives the right-regular grammar of the automaton.
//
// It emits S -> start, S -> f for every accept state f, and
// A -> aB for every transition A --a--> B over the alphabet.
// Epsilon transitions have no production; convert first to fold them in.
func (a *Automaton) RegularGrammar() *Grammar {
	start := a.startSymbol()
	initial := Production{Head: start, Body: string(a.start)}

	seen := map[string]struct{}{initial.String(): {}}
	var rest []Production
	add := func(p Production) {
		if _, dup := seen[p.String()]; dup {
			return
		}
		seen[p.String()] = struct{}{}
		rest = append(rest, p)
	}

	for _, f := range a.accept.Sorted() {
		add(Production{Head: start, Body: string(f)})
	}
	for _, e := range a.Edges() {
		if e.On == Epsilon {
			continue
		}
		for _, to := range a.transitions[e].Sorted() {
			add(Production{Head: string(e.From), Body: string(e.On) + string(to)})
		}
	}
	slices.SortFunc(rest, func(x, y Production) int {
		return strings.Compare(x.String(), y.String())
	})

	return &Grammar{
		Start:       start,
		Productions: append([]Production{initial}, rest...),
	}
}

// ToRegularGrammar returns RegularGrammar in its textual listing form.
func (a *Automaton) ToRegularGrammar() string {
	return a.RegularGrammar().String()
}

func (a *Automaton) startSymbol() string {
	sym := DefaultStartSymbol
	for a.states.Has(State(sym)) {
		sym += "'"
	}
	return sym
}
