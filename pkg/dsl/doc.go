/*
Package dsl provides a fluent builder for constructing automata in Go code.

It spares callers from assembling transition maps by hand and validates the
result through automaton.New, so a built automaton always satisfies the model
invariants.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/automata/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Add("q0").Start().
			On("a", "q0").
			On("b", "q0", "q1")

		b.Add("q1").On("b", "q2")
		b.Add("q2").Accept()

		nfa, err := b.Build()
		if err != nil {
			panic(err)
		}
		fmt.Println(nfa.ConvertToDFA().Accepts("abb"))
	}

If Alphabet is never called, the alphabet is every non-epsilon symbol used
by a transition.
*/
package dsl
