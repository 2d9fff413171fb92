package loop

import (
	"fmt"
	"math/rand/v2"
)

// Mode selects the traversal policy over an ordered combination space.
type Mode string

const (
	// ModeSequential walks indices 0,1,...,N-1 and wraps around silently.
	ModeSequential Mode = "sequential"
	// ModeRandom draws a uniformly random index per invocation, reproducibly
	// for a fixed seed.
	ModeRandom Mode = "random"
	// ModePingPong bounces between the ends: 0,1,...,N-1,N-2,...,1,0,1,...
	ModePingPong Mode = "ping_pong"
)

// ParseMode validates a user-supplied mode string. An unknown mode is a
// configuration error and fails fast rather than silently degrading.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSequential, ModeRandom, ModePingPong:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown traversal mode %q: must be one of %q, %q or %q",
		s, ModeSequential, ModeRandom, ModePingPong)
}

// State is the persistent traversal record owned by exactly one loop-node
// instance. It is created on the instance's first invocation, mutated in
// place on every subsequent one, and survives until the session ends or an
// explicit reset re-initializes it.
type State struct {
	// Index is the current position in the combination space.
	Index int
	// Direction is +1 or -1 and only meaningful in ping-pong mode.
	Direction int
	// Calls counts completed advances and derives the per-call sub-seed in
	// random mode, so a re-run with the same seed replays the same draws.
	Calls uint64
}

// NewState returns the initial traversal state: index 0, moving forward.
func NewState() *State {
	return &State{Direction: 1}
}

// Reset re-initializes the state to what NewState creates.
func (s *State) Reset() {
	s.Index = 0
	s.Direction = 1
	s.Calls = 0
}

// Control carries the per-invocation traversal inputs of a loop node.
type Control struct {
	Mode  Mode
	Seed  int64
	Reset bool
}

// Invoke performs one invocation against the state: it returns the index to
// report now and advances the state for the next call. The convention is
// fixed across all node variants: report the current index first, then
// advance, so a fresh instance always reports index 0 on its first call in
// every mode. A truthy Reset re-initializes the state and reports index 0
// without advancing.
//
// A size of zero makes Invoke a no-op that reports 0; callers emit default
// outputs for that case. A persisted index that no longer fits the space
// (the grid was edited between passes) is clamped back to 0.
func Invoke(st *State, size int, ctrl Control) int {
	if size <= 0 {
		st.Index = 0
		return 0
	}
	if st.Index >= size {
		st.Index = 0
	}
	if st.Direction == 0 {
		st.Direction = 1
	}

	if ctrl.Reset {
		st.Reset()
		return 0
	}

	reported := st.Index
	st.Calls++

	switch ctrl.Mode {
	case ModeRandom:
		// One fresh PCG per draw, seeded by (seed, call count). The stream
		// of draws is reproducible across runs without sharing a generator
		// between instances.
		rng := rand.New(rand.NewPCG(uint64(ctrl.Seed), st.Calls))
		st.Index = rng.IntN(size)
	case ModePingPong:
		st.Index += st.Direction
		if st.Index >= size-1 {
			st.Index = size - 1
			st.Direction = -1
		}
		if st.Index <= 0 {
			st.Index = 0
			st.Direction = 1
		}
	default:
		st.Index = (st.Index + 1) % size
	}

	return reported
}
