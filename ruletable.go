package turing

import (
	"fmt"
	"sync"
)

// RuleTable is the immutable, bijective (from -> Transition) map a Machine
// runs against, plus its derived reverse index. Missing a key means
// Reject in forward mode.
type RuleTable[S, I, O comparable] struct {
	forward map[fromKey[S, I, O]]Transition[S, I, O]

	reverseOnce sync.Once
	reverseIdx  *reverseIndex[S, I, O]

	// predecessorCache memoises reverse-lookup results per (next_state,
	// left, head, right) tuple: a thread-safe associative cache, built up
	// incrementally rather than all at once, since the population of
	// reachable post-configurations is not known up front.
	predecessorCache sync.Map
}

// NewRuleTable validates and indexes transitions, enforcing the one rule
// per (state, read symbol) invariant. Fails fast on the first invalid or
// duplicate transition.
func NewRuleTable[S, I, O comparable](transitions []Transition[S, I, O]) (*RuleTable[S, I, O], error) {
	forward := make(map[fromKey[S, I, O]]Transition[S, I, O], len(transitions))
	for _, t := range transitions {
		if err := t.validate(); err != nil {
			return nil, err
		}
		key := t.from()
		if _, exists := forward[key]; exists {
			return nil, fmt.Errorf("%w: state %v", ErrDuplicateTransition, t.CurrentState)
		}
		forward[key] = t
	}
	return &RuleTable[S, I, O]{forward: forward}, nil
}

func (rt *RuleTable[S, I, O]) lookup(state S, read TapeSymbol[I, O]) (Transition[S, I, O], bool) {
	t, ok := rt.forward[fromKey[S, I, O]{state: state, read: read}]
	return t, ok
}

func (rt *RuleTable[S, I, O]) reverseIndex() *reverseIndex[S, I, O] {
	rt.reverseOnce.Do(func() {
		rt.reverseIdx = buildReverseIndex(rt.forward)
	})
	return rt.reverseIdx
}

type optSymbol[I, O comparable] struct {
	present bool
	value   TapeSymbol[I, O]
}

func toOptSymbol[I, O comparable](s *TapeSymbol[I, O]) optSymbol[I, O] {
	if s == nil {
		return optSymbol[I, O]{}
	}
	return optSymbol[I, O]{present: true, value: *s}
}

type candidateKey[S, I, O comparable] struct {
	state             MachineState[S]
	left, head, right optSymbol[I, O]
}

// candidates is the cached entry point reverse search calls per
// configuration visited: repeated local symbol contexts recur often across
// distinct branches of the predecessor search, so this avoids re-deriving
// the same bucket restriction every time.
func (rt *RuleTable[S, I, O]) candidates(state MachineState[S], left, head, right *TapeSymbol[I, O]) []Transition[S, I, O] {
	key := candidateKey[S, I, O]{
		state: state,
		left:  toOptSymbol(left),
		head:  toOptSymbol(head),
		right: toOptSymbol(right),
	}
	if v, ok := rt.predecessorCache.Load(key); ok {
		return v.([]Transition[S, I, O])
	}
	result := rt.reverseIndex().candidates(state, left, head, right)
	rt.predecessorCache.Store(key, result)
	return result
}
