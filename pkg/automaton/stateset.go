package automaton

import (
	"slices"
	"strconv"
	"strings"
)

// StateSet is an unordered set of states with value semantics.
// The zero value is an empty set ready for reads; use NewStateSet before Add.
type StateSet map[State]struct{}

// NewStateSet creates a set holding the given states. Duplicates collapse.
func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

// Add inserts st and reports whether it was not already present.
func (s StateSet) Add(st State) bool {
	if _, ok := s[st]; ok {
		return false
	}
	s[st] = struct{}{}
	return true
}

// Has reports whether st is a member of the set.
func (s StateSet) Has(st State) bool {
	_, ok := s[st]
	return ok
}

// Len returns the number of members.
func (s StateSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s StateSet) Clone() StateSet {
	out := make(StateSet, len(s))
	for st := range s {
		out[st] = struct{}{}
	}
	return out
}

// Union returns a new set holding the members of s and other.
func (s StateSet) Union(other StateSet) StateSet {
	out := s.Clone()
	for st := range other {
		out[st] = struct{}{}
	}
	return out
}

// Intersects reports whether the two sets share at least one member.
func (s StateSet) Intersects(other StateSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for st := range small {
		if large.Has(st) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold exactly the same members.
func (s StateSet) Equal(other StateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for st := range s {
		if !other.Has(st) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending lexicographic order.
func (s StateSet) Sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	slices.Sort(out)
	return out
}

// Key returns a canonical identity for the set.
// Two sets have the same key iff they are Equal, whatever the insertion order.
func (s StateSet) Key() string {
	var sb strings.Builder
	for i, st := range s.Sorted() {
		if i > 0 {
			sb.WriteByte(',')
		}
		// Quoting keeps the key injective for labels containing the separator.
		sb.WriteString(strconv.Quote(string(st)))
	}
	return sb.String()
}

// String renders the set as {a, b, c} in sorted order.
func (s StateSet) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, st := range sorted {
		parts[i] = string(st)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
