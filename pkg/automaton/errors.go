package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStates is returned when an automaton is declared without any state.
	ErrNoStates = errors.New("automaton has no states")

	// ErrUnknownState is returned when a state is referenced but not declared.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownSymbol is returned when a transition consumes an undeclared symbol.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrReservedSymbol is returned when the alphabet declares the epsilon symbol.
	ErrReservedSymbol = errors.New("epsilon is reserved and cannot be part of the alphabet")
)

// ValidationError describes a single invariant violation found at construction.
type ValidationError struct {
	Field string // "states", "alphabet", "transitions", "start" or "accept"
	Value string // Offending label, if any
	Err   error  // One of the sentinel errors above
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v %q", e.Field, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AggregateError collects every violation found while validating an automaton.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
