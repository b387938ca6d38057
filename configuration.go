package turing

import (
	"context"
	"fmt"
)

// Configuration is a snapshot of the machine at one instant: state plus
// tape. Every step below produces a fresh Configuration; nothing is
// mutated in place.
type Configuration[S, I, O comparable] struct {
	table *RuleTable[S, I, O]
	state MachineState[S]
	tape  Tape[I, O]
}

func forParsing[S, I, O comparable](table *RuleTable[S, I, O], start S, input []I) Configuration[S, I, O] {
	return Configuration[S, I, O]{
		table: table,
		state: NonTerminalState(start),
		tape:  NewBoundedTape[I, O](input),
	}
}

func forGenerating[S, I, O comparable](table *RuleTable[S, I, O]) Configuration[S, I, O] {
	return Configuration[S, I, O]{
		table: table,
		state: AcceptState[S](),
		tape:  NewUnboundedTape[I, O](),
	}
}

// State is the configuration's control state.
func (c Configuration[S, I, O]) State() MachineState[S] { return c.state }

// Tape is the configuration's tape.
func (c Configuration[S, I, O]) Tape() Tape[I, O] { return c.tape }

// step applies one forward transition. A terminal configuration is
// returned unchanged.
func (c Configuration[S, I, O]) step() (Configuration[S, I, O], error) {
	if c.state.IsTerminal() {
		return c, nil
	}
	s, _ := c.state.Value()

	head, ok := c.tape.Head()
	if !ok {
		return c, fmt.Errorf("%w: state %v", ErrHeadUndefined, s)
	}

	t, ok := c.table.lookup(s, head)
	if !ok {
		return Configuration[S, I, O]{table: c.table, state: RejectState[S](), tape: c.tape}, nil
	}

	tape := c.tape
	leave := t.Leave()
	if leave != head {
		if out, isOutput := leave.OutputValue(); isOutput {
			tape = tape.WriteSymbol(OutputSymbol[I, O](out))
		}
	}
	tape = tape.ApplyMove(t.Move)

	return Configuration[S, I, O]{table: c.table, state: t.NextStateValue(), tape: tape}, nil
}

// iterate runs step until the configuration reaches a terminal state or
// ctx is cancelled.
func (c Configuration[S, I, O]) iterate(ctx context.Context) (Configuration[S, I, O], error) {
	cur := c
	for !cur.state.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return cur, err
		}
		next, err := cur.step()
		if err != nil {
			return cur, err
		}
		cur = next
	}
	return cur, nil
}

// previousConfigurations enumerates every configuration that could
// immediately precede c under some rule, pruned to tapes no longer than
// maxTapeLength.
func (c Configuration[S, I, O]) previousConfigurations(maxTapeLength int) []Configuration[S, I, O] {
	left, hasLeft := c.tape.Left()
	head, hasHead := c.tape.Head()
	right, hasRight := c.tape.Right()

	var leftPtr, headPtr, rightPtr *TapeSymbol[I, O]
	if hasLeft {
		leftPtr = &left
	}
	if hasHead {
		headPtr = &head
	}
	if hasRight {
		rightPtr = &right
	}

	candidates := c.table.candidates(c.state, leftPtr, headPtr, rightPtr)

	out := make([]Configuration[S, I, O], 0, len(candidates))
	for _, t := range candidates {
		tape := c.tape.ApplyMove(invert(t.Move))

		switch {
		case t.Read.IsLeftMarker():
			tape = tape.BindLeft()
		case t.Read.IsRightMarker():
			tape = tape.BindRight()
		default:
			tape = tape.WriteSymbol(t.Read)
		}

		if tape.Size() > maxTapeLength {
			continue
		}

		out = append(out, Configuration[S, I, O]{
			table: c.table,
			state: NonTerminalState(t.CurrentState),
			tape:  tape,
		})
	}
	return out
}

// asAcceptedInput reports whether c is a valid start of an accepted run:
// its state is NonTerminalState(start), its tape has nothing left of the
// head, and every writable cell is an input symbol (no output residue).
func (c Configuration[S, I, O]) asAcceptedInput(start S) ([]I, bool) {
	v, ok := c.state.Value()
	if !ok || v != start {
		return nil, false
	}
	if _, hasLeft := c.tape.LeftWritable(); hasLeft {
		return nil, false
	}

	cells := c.tape.ToList()
	out := make([]I, 0, len(cells))
	for _, cell := range cells {
		iv, isInput := cell.InputValue()
		if !isInput {
			return nil, false
		}
		out = append(out, iv)
	}
	return out, true
}
