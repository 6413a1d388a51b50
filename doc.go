/*
Package automata is a finite automaton engine: membership testing, NFA to DFA
conversion by subset construction, and right-regular grammar derivation.

The model lives in pkg/automaton and is usable on its own. This package adds
an Engine facade that wraps the same operations with structured logging and
lifecycle hooks, so hosts can observe conversions and membership checks
(see pkg/observability for Prometheus metrics built on those hooks).

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/automata"
		"github.com/aretw0/automata/pkg/dsl"
	)

	func main() {
		b := dsl.New()
		b.Add("q0").Start().On("a", "q0").On("b", "q0", "q1")
		b.Add("q1").On("a", "q1").On("b", "q2")
		b.Add("q2").Accept().On("a", "q2")

		nfa, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		eng := automata.New()
		dfa := eng.Convert(nfa)
		fmt.Println(eng.Accepts(dfa, "bb"))  // true
		fmt.Print(eng.Grammar(nfa))          // S -> q0 ...
	}
*/
package automata
