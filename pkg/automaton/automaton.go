package automaton

import (
	"cmp"
	"slices"
	"strings"
)

// State is an opaque state label.
type State string

// Symbol is a single input symbol.
type Symbol string

// Epsilon is the reserved empty symbol marking silent transitions.
// It never belongs to an alphabet.
const Epsilon Symbol = ""

// Edge is the flat (state, symbol) key of the transition relation.
type Edge struct {
	From State
	On   Symbol
}

// Automaton is an immutable finite automaton.
// Values are created with New (or MustNew) and never change afterwards;
// every derived automaton is a fresh, independent instance.
type Automaton struct {
	states      StateSet
	symbols     []Symbol // sorted, no duplicates
	alphabet    map[Symbol]struct{}
	transitions map[Edge]StateSet
	start       State
	accept      StateSet
}

// New validates the definition and builds an Automaton.
// Empty target lists are treated as "no transition".
// All invariant violations are reported at once in an *AggregateError.
func New(states []State, alphabet []Symbol, transitions map[Edge][]State, start State, accept []State) (*Automaton, error) {
	a := &Automaton{
		states:      NewStateSet(states...),
		alphabet:    make(map[Symbol]struct{}, len(alphabet)),
		transitions: make(map[Edge]StateSet, len(transitions)),
		start:       start,
		accept:      NewStateSet(accept...),
	}
	for _, sym := range alphabet {
		if _, dup := a.alphabet[sym]; dup {
			continue
		}
		a.alphabet[sym] = struct{}{}
		a.symbols = append(a.symbols, sym)
	}
	slices.Sort(a.symbols)

	for edge, targets := range transitions {
		if len(targets) == 0 {
			continue
		}
		set, ok := a.transitions[edge]
		if !ok {
			set = make(StateSet, len(targets))
			a.transitions[edge] = set
		}
		for _, t := range targets {
			set.Add(t)
		}
	}

	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// MustNew is like New but panics if the definition is invalid.
// It is intended for static tables known to be well-formed.
func MustNew(states []State, alphabet []Symbol, transitions map[Edge][]State, start State, accept []State) *Automaton {
	a, err := New(states, alphabet, transitions, start, accept)
	if err != nil {
		panic(err)
	}
	return a
}

// newTrusted builds an automaton from data produced by this package.
// The caller guarantees the invariants; no validation is performed.
func newTrusted(states StateSet, symbols []Symbol, transitions map[Edge]StateSet, start State, accept StateSet) *Automaton {
	alphabet := make(map[Symbol]struct{}, len(symbols))
	for _, sym := range symbols {
		alphabet[sym] = struct{}{}
	}
	return &Automaton{
		states:      states,
		symbols:     slices.Clone(symbols),
		alphabet:    alphabet,
		transitions: transitions,
		start:       start,
		accept:      accept,
	}
}

func (a *Automaton) validate() error {
	var errs []error
	add := func(field string, value string, err error) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Err: err})
	}

	if a.states.Len() == 0 {
		add("states", "", ErrNoStates)
	}
	if _, ok := a.alphabet[Epsilon]; ok {
		add("alphabet", "", ErrReservedSymbol)
	}
	if !a.states.Has(a.start) {
		add("start", string(a.start), ErrUnknownState)
	}
	for _, st := range a.accept.Sorted() {
		if !a.states.Has(st) {
			add("accept", string(st), ErrUnknownState)
		}
	}
	for _, edge := range a.Edges() {
		if !a.states.Has(edge.From) {
			add("transitions", string(edge.From), ErrUnknownState)
		}
		if _, ok := a.alphabet[edge.On]; !ok && edge.On != Epsilon {
			add("transitions", string(edge.On), ErrUnknownSymbol)
		}
		for _, to := range a.transitions[edge].Sorted() {
			if !a.states.Has(to) {
				add("transitions", string(to), ErrUnknownState)
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// States returns the declared states.
func (a *Automaton) States() StateSet {
	return a.states.Clone()
}

// Alphabet returns the input symbols in sorted order.
func (a *Automaton) Alphabet() []Symbol {
	return slices.Clone(a.symbols)
}

// InAlphabet reports whether sym is a declared input symbol.
func (a *Automaton) InAlphabet(sym Symbol) bool {
	_, ok := a.alphabet[sym]
	return ok
}

// Start returns the start state.
func (a *Automaton) Start() State {
	return a.start
}

// AcceptStates returns the accept states.
func (a *Automaton) AcceptStates() StateSet {
	return a.accept.Clone()
}

// IsAccepting reports whether st is an accept state.
func (a *Automaton) IsAccepting(st State) bool {
	return a.accept.Has(st)
}

// Targets returns the destinations of the (from, on) pair.
// The result is empty when no transition is defined.
func (a *Automaton) Targets(from State, on Symbol) StateSet {
	return a.transitions[Edge{From: from, On: on}].Clone()
}

// Edges lists every (state, symbol) pair that has at least one target,
// ordered by state then symbol.
func (a *Automaton) Edges() []Edge {
	edges := make([]Edge, 0, len(a.transitions))
	for e := range a.transitions {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(x, y Edge) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}
		return cmp.Compare(x.On, y.On)
	})
	return edges
}

// HasEpsilon reports whether any silent transition is defined.
func (a *Automaton) HasEpsilon() bool {
	for e := range a.transitions {
		if e.On == Epsilon {
			return true
		}
	}
	return false
}

// String dumps the automaton in a stable, human-readable form.
func (a *Automaton) String() string {
	var sb strings.Builder
	sb.WriteString("Finite Automaton:\n")
	sb.WriteString("States: " + a.states.String() + "\n")

	syms := make([]string, len(a.symbols))
	for i, s := range a.symbols {
		syms[i] = string(s)
	}
	sb.WriteString("Alphabet: {" + strings.Join(syms, ", ") + "}\n")

	sb.WriteString("Transitions:\n")
	for _, e := range a.Edges() {
		sb.WriteString(string(e.From) + " --" + e.On.String() + "--> " + a.transitions[e].String() + "\n")
	}
	sb.WriteString("Start state: " + string(a.start) + "\n")
	sb.WriteString("Accept states: " + a.accept.String() + "\n")
	return sb.String()
}

// String renders the symbol, using ε for the silent symbol.
func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(s)
}
