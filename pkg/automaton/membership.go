package automaton

// Accepts reports whether the automaton accepts input.
// Each rune of input is read as a one-character symbol.
func (a *Automaton) Accepts(input string) bool {
	symbols := make([]Symbol, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, Symbol(string(r)))
	}
	return a.AcceptsSymbols(symbols...)
}

// AcceptsSymbols runs a deterministic traversal from the start state.
// A symbol outside the alphabet or a missing transition rejects immediately.
//
// The traversal follows one target per step. When a pair has several targets
// the lexicographically smallest is taken, so the answer is only meaningful for
// automata where IsDeterministic holds, or for the output of ConvertToDFA.
// Epsilon transitions are never followed here.
func (a *Automaton) AcceptsSymbols(symbols ...Symbol) bool {
	current := a.start
	for _, sym := range symbols {
		if !a.InAlphabet(sym) {
			return false
		}
		next, ok := a.step(current, sym)
		if !ok {
			return false
		}
		current = next
	}
	return a.accept.Has(current)
}

func (a *Automaton) step(from State, on Symbol) (State, bool) {
	targets := a.transitions[Edge{From: from, On: on}]
	if len(targets) == 0 {
		return "", false
	}
	if len(targets) == 1 {
		for t := range targets {
			return t, true
		}
	}
	return targets.Sorted()[0], true
}

// IsDeterministic reports whether every (state, symbol) pair over the
// alphabet has at most one target.
//
// Epsilon transitions are not inspected: an automaton whose only
// non-determinism is silent moves still reports true.
func (a *Automaton) IsDeterministic() bool {
	for _, st := range a.states.Sorted() {
		for _, sym := range a.symbols {
			if a.transitions[Edge{From: st, On: sym}].Len() > 1 {
				return false
			}
		}
	}
	return true
}
