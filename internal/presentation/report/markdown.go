package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
)

// Markdown renders a summary of a: properties, transition table and grammar.
func Markdown(name string, a *automaton.Automaton) string {
	var sb strings.Builder

	title := "Automaton"
	if name != "" {
		title = fmt.Sprintf("Automaton `%s`", name)
	}
	sb.WriteString("# " + title + "\n\n")

	sb.WriteString("| Property | Value |\n|---|---|\n")
	row(&sb, "States", a.States().String())
	row(&sb, "Alphabet", symbols(a.Alphabet()))
	row(&sb, "Start", string(a.Start()))
	row(&sb, "Accept", a.AcceptStates().String())
	row(&sb, "Deterministic", yesNo(a.IsDeterministic()))
	row(&sb, "Epsilon moves", yesNo(a.HasEpsilon()))
	sb.WriteString("\n")

	sb.WriteString("## Transitions\n\n")
	edges := a.Edges()
	if len(edges) == 0 {
		sb.WriteString("_none_\n\n")
	} else {
		sb.WriteString("| From | Symbol | To |\n|---|---|---|\n")
		for _, e := range edges {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n",
				escape(string(e.From)), escape(e.On.String()), escape(a.Targets(e.From, e.On).String()))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Grammar\n\n```text\n")
	sb.WriteString(a.ToRegularGrammar())
	sb.WriteString("```\n")
	return sb.String()
}

// Subsets renders which states of source each label of its DFA stands for.
func Subsets(source *automaton.Automaton) string {
	subsets := source.SubsetMap()
	var sb strings.Builder
	sb.WriteString("## Subsets\n\n| DFA state | Source states |\n|---|---|\n")
	for i := 0; i < len(subsets); i++ {
		label := automaton.State(fmt.Sprintf("q%d", i))
		fmt.Fprintf(&sb, "| %s | %s |\n", label, escape(subsets[label].String()))
	}
	return sb.String()
}

func row(sb *strings.Builder, key, value string) {
	fmt.Fprintf(sb, "| %s | %s |\n", key, escape(value))
}

func symbols(syms []automaton.Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = string(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
