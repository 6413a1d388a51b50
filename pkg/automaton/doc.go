/*
Package automaton models finite automata and the transformations defined over them.

An Automaton holds a set of states, an input alphabet, a transition relation
keyed by (state, symbol) pairs, a start state and a set of accept states.
Values are immutable: every operation either answers a question about the
automaton or returns a brand-new one.

# Operations

  - Accepts: membership test by deterministic traversal.
  - IsDeterministic: checks that no (state, symbol) pair fans out.
  - EpsilonClosure: states reachable through silent transitions.
  - ConvertToDFA: subset construction, folding epsilon transitions in.
  - RegularGrammar: right-regular grammar mirroring the transition structure.

# Epsilon

The empty Symbol (Epsilon) marks silent transitions. It is reserved and may
not appear in an alphabet. Silent transitions are only followed while
computing closures; Accepts and IsDeterministic ignore them.
*/
package automaton
