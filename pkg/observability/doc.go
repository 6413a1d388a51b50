/*
Package observability provides tools for monitoring the automata engine.

It defines the events emitted around conversions, membership checks and
grammar derivations, the Hooks that receive them, and a Prometheus-backed
Metrics set that can be bound to those hooks.
*/
package observability
