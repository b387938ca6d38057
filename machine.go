package turing

import (
	"context"
	"iter"
)

// Machine is an immutable (start state, rule table) pair. It exposes two
// operations over the one rule set: Parse runs the rules forward; Generate
// walks the reverse predecessor relation to enumerate accepted tapes.
type Machine[S, I, O comparable] struct {
	start S
	table *RuleTable[S, I, O]
}

// NewMachine validates transitions and builds a Machine. Fails fast on a
// rule-table uniqueness violation or a malformed boundary transition.
func NewMachine[S, I, O comparable](start S, transitions []Transition[S, I, O]) (*Machine[S, I, O], error) {
	table, err := NewRuleTable(transitions)
	if err != nil {
		return nil, err
	}
	return &Machine[S, I, O]{start: start, table: table}, nil
}

// Parse classifies input as accepted or rejected by running the rules
// forward from the start state until a terminal state is reached.
func (m *Machine[S, I, O]) Parse(ctx context.Context, input []I) (bool, error) {
	cfg := forParsing(m.table, m.start, input)
	final, err := cfg.iterate(ctx)
	if err != nil {
		return false, err
	}
	return final.State().IsAccept(), nil
}

// Generate returns a lazy, depth-first stream of accepted input tapes no
// longer than maxTapeLength, walking the predecessor relation backwards
// from the accept state. Iteration stops early if ctx is cancelled; the
// stream simply ends, since iter.Seq carries no error channel.
func (m *Machine[S, I, O]) Generate(ctx context.Context, maxTapeLength int) iter.Seq[[]I] {
	return func(yield func([]I) bool) {
		m.search(ctx, forGenerating(m.table), maxTapeLength, yield)
	}
}

// search is the depth-first walk over previousConfigurations. It returns
// false once the caller (via yield) or ctx asks to stop, so callers up the
// recursion can unwind without visiting further siblings.
func (m *Machine[S, I, O]) search(ctx context.Context, cfg Configuration[S, I, O], maxTapeLength int, yield func([]I) bool) bool {
	if ctx.Err() != nil {
		return false
	}

	if input, ok := cfg.asAcceptedInput(m.start); ok {
		if !yield(input) {
			return false
		}
	}

	for _, child := range cfg.previousConfigurations(maxTapeLength) {
		if !m.search(ctx, child, maxTapeLength, yield) {
			return false
		}
	}
	return true
}
