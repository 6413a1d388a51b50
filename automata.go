package automata

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/observability"
)

// Engine is the high-level entry point for the automata library.
// It wraps the automaton operations and reports them to a logger and hooks.
// An Engine holds no automaton state and is safe for concurrent use as long
// as the configured hooks are.
type Engine struct {
	logger *slog.Logger
	hooks  observability.Hooks
	now    func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks. Repeated calls chain the hooks.
func WithHooks(hooks observability.Hooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return eng
}

// Convert returns the deterministic equivalent of a.
func (e *Engine) Convert(a *automaton.Automaton) *automaton.Automaton {
	began := e.now()
	dfa := a.ConvertToDFA()
	took := e.now().Sub(began)

	event := &observability.ConvertEvent{
		EventBase:    e.base(observability.EventConvert),
		SourceStates: a.States().Len(),
		ResultStates: dfa.States().Len(),
		Epsilon:      a.HasEpsilon(),
		Duration:     took,
	}
	e.logger.Info(string(observability.EventConvert),
		"source_states", event.SourceStates,
		"result_states", event.ResultStates,
		"epsilon", event.Epsilon,
		"duration", took,
	)
	if e.hooks.OnConvert != nil {
		e.hooks.OnConvert(event)
	}
	return dfa
}

// Accepts tests input against a.
// A warning is logged when a is not deterministic, since the traversal then
// follows a single arbitrary-but-stable branch.
func (e *Engine) Accepts(a *automaton.Automaton, input string) bool {
	deterministic := a.IsDeterministic() && !a.HasEpsilon()
	if !deterministic {
		e.logger.Warn("membership test on a non-deterministic automaton; convert it first for language semantics",
			"input", input)
	}

	accepted := a.Accepts(input)
	e.logger.Debug(string(observability.EventMembership), "input", input, "accepted", accepted)
	if e.hooks.OnMembership != nil {
		e.hooks.OnMembership(&observability.MembershipEvent{
			EventBase:     e.base(observability.EventMembership),
			Input:         input,
			Accepted:      accepted,
			Deterministic: deterministic,
		})
	}
	return accepted
}

// Grammar derives the right-regular grammar of a.
func (e *Engine) Grammar(a *automaton.Automaton) *automaton.Grammar {
	g := a.RegularGrammar()
	e.logger.Debug(string(observability.EventGrammar), "productions", len(g.Productions), "start", g.Start)
	if e.hooks.OnGrammar != nil {
		e.hooks.OnGrammar(&observability.GrammarEvent{
			EventBase:   e.base(observability.EventGrammar),
			Productions: len(g.Productions),
		})
	}
	return g
}

// Report summarizes the shape of an automaton.
type Report struct {
	States        int
	Symbols       int
	Edges         int
	AcceptStates  int
	Deterministic bool
	Epsilon       bool
}

// Inspect summarizes a without transforming it.
func (e *Engine) Inspect(a *automaton.Automaton) Report {
	return Report{
		States:        a.States().Len(),
		Symbols:       len(a.Alphabet()),
		Edges:         len(a.Edges()),
		AcceptStates:  a.AcceptStates().Len(),
		Deterministic: a.IsDeterministic(),
		Epsilon:       a.HasEpsilon(),
	}
}

func (e *Engine) base(t observability.EventType) observability.EventBase {
	return observability.EventBase{Timestamp: e.now(), Type: t}
}
