package observability

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventConvert    EventType = "dfa_converted"
	EventMembership EventType = "membership_checked"
	EventGrammar    EventType = "grammar_derived"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ConvertEvent describes a finished subset construction.
type ConvertEvent struct {
	EventBase
	SourceStates int           `json:"source_states"`
	ResultStates int           `json:"result_states"`
	Epsilon      bool          `json:"epsilon"`
	Duration     time.Duration `json:"duration"`
}

// MembershipEvent describes a single membership test.
type MembershipEvent struct {
	EventBase
	Input         string `json:"input"`
	Accepted      bool   `json:"accepted"`
	Deterministic bool   `json:"deterministic"`
}

// GrammarEvent describes a grammar derivation.
type GrammarEvent struct {
	EventBase
	Productions int `json:"productions"`
}

// Hooks defines callbacks for engine observability. Nil fields are skipped.
type Hooks struct {
	OnConvert    func(*ConvertEvent)
	OnMembership func(*MembershipEvent)
	OnGrammar    func(*GrammarEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnConvert:    chain(h.OnConvert, other.OnConvert),
		OnMembership: chain(h.OnMembership, other.OnMembership),
		OnGrammar:    chain(h.OnGrammar, other.OnGrammar),
	}
}

func chain[E any](first, second func(*E)) func(*E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(e *E) {
		first(e)
		second(e)
	}
}
