package automata_test

import (
	"fmt"
	"log"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/dsl"
)

// ExampleEngine_Convert builds a small NFA with the DSL and converts it.
func ExampleEngine_Convert() {
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

	fmt.Println(nfa.IsDeterministic(), dfa.IsDeterministic())
	for _, input := range []string{"b", "bb", "abab"} {
		fmt.Printf("%s: %v\n", input, eng.Accepts(dfa, input))
	}
	// Output:
	// false true
	// b: false
	// bb: true
	// abab: true
}

// ExampleEngine_Grammar prints the right-regular grammar of an automaton.
func ExampleEngine_Grammar() {
	b := dsl.New()
	b.Add("q0").Start().On("a", "q1")
	b.Add("q1").Accept().On("b", "q0")

	fmt.Print(automata.New().Grammar(b.MustBuild()))
	// Output:
	// S -> q0
	// S -> q1
	// q0 -> aq1
	// q1 -> bq0
}
