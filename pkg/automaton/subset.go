package automaton

import "strconv"

// EpsilonClosure returns every state reachable from states using only
// epsilon transitions, the input states included. The argument is not modified.
func (a *Automaton) EpsilonClosure(states StateSet) StateSet {
	closure := states.Clone()
	pending := states.Sorted()
	for len(pending) > 0 {
		st := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for next := range a.transitions[Edge{From: st, On: Epsilon}] {
			if closure.Add(next) {
				pending = append(pending, next)
			}
		}
	}
	return closure
}

// move returns the union of the symbol targets of every member of set.
func (a *Automaton) move(set StateSet, on Symbol) StateSet {
	out := make(StateSet)
	for st := range set {
		for t := range a.transitions[Edge{From: st, On: on}] {
			out[t] = struct{}{}
		}
	}
	return out
}

// arc is a recorded transition between two discovered state-sets,
// identified by their discovery index.
type arc struct {
	from int
	on   Symbol
	to   int
}

// discover explores the state-sets reachable from the closure of the start
// state. Exploration is breadth-first with symbols in sorted order, so index 0
// is always the start state-set and the numbering is reproducible.
func (a *Automaton) discover() ([]StateSet, []arc) {
	startSet := a.EpsilonClosure(NewStateSet(a.start))
	discovered := []StateSet{startSet}
	index := map[string]int{startSet.Key(): 0}
	var arcs []arc

	for i := 0; i < len(discovered); i++ {
		for _, sym := range a.symbols {
			next := a.EpsilonClosure(a.move(discovered[i], sym))
			if next.Len() == 0 {
				continue
			}
			key := next.Key()
			j, seen := index[key]
			if !seen {
				j = len(discovered)
				index[key] = j
				discovered = append(discovered, next)
			}
			arcs = append(arcs, arc{from: i, on: sym, to: j})
		}
	}
	return discovered, arcs
}

func subsetLabel(i int) State {
	return State("q" + strconv.Itoa(i))
}

// ConvertToDFA builds an equivalent deterministic automaton by subset construction.
//
// Each discovered state-set is labelled q0, q1, ... in discovery order; the
// start state-set is always q0. A state-set is accepting iff it contains an
// accept state of the receiver. The receiver is not modified.
func (a *Automaton) ConvertToDFA() *Automaton {
	discovered, arcs := a.discover()

	states := make(StateSet, len(discovered))
	accept := make(StateSet)
	for i, set := range discovered {
		label := subsetLabel(i)
		states.Add(label)
		if set.Intersects(a.accept) {
			accept.Add(label)
		}
	}
	transitions := make(map[Edge]StateSet, len(arcs))
	for _, t := range arcs {
		transitions[Edge{From: subsetLabel(t.from), On: t.on}] = NewStateSet(subsetLabel(t.to))
	}

	return newTrusted(states, a.symbols, transitions, subsetLabel(0), accept)
}

// SubsetMap tells which original states each label of ConvertToDFA stands for.
// It reruns the discovery and is meant for inspection and reporting.
func (a *Automaton) SubsetMap() map[State]StateSet {
	discovered, _ := a.discover()
	out := make(map[State]StateSet, len(discovered))
	for i, set := range discovered {
		out[subsetLabel(i)] = set
	}
	return out
}
