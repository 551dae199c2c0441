package game

import (
	"math/rand"
	"sync"
	"time"

	"k8s.io/klog/v2"
)

// Engine is the authoritative state machine of one game session.
//
// RequestFlip, Restart and the delayed match-check each run to completion under
// the engine's lock, so they never interleave. After every change the listener
// given to NewEngine receives a snapshot of the new state.
type Engine struct {
	cfg      Config
	onChange func(GameState)

	mu         sync.Mutex
	rng        *rand.Rand
	state      GameState
	matchTimer *time.Timer
	generation uint64 // Identifies the currently scheduled match-check.
	closed     bool
}

// NewEngine creates an Engine and deals the first game.
//
// onChange may be nil. It is called with the engine's lock held, so it must
// not call back into the Engine.
func NewEngine(cfg Config, onChange func(GameState)) *Engine {
	if cfg.MatchDelay < 0 {
		cfg.MatchDelay = 0
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		cfg:      cfg,
		onChange: onChange,
		rng:      rand.New(rand.NewSource(seed)),
	}
	e.state = NewGameState(GenerateDeckWithRand(e.rng))
	klog.V(1).Infof("Engine: new game dealt (seed=%d)", seed)
	return e
}

// Config returns the configuration the engine was created with.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns a snapshot of the current game. The caller owns the copy.
func (e *Engine) State() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// RequestFlip turns card id face up, if allowed.
//
// The request is silently ignored if the card doesn't exist, is already face up
// or matched, or if two cards are already waiting for their match-check.
// Flipping the second card of a turn schedules the match-check after MatchDelay.
func (e *Engine) RequestFlip(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	next, ok := e.state.Flip(id)
	if !ok {
		klog.V(2).Infof("Engine: flip of card %d ignored (phase=%s)", id, e.state.Phase())
		return
	}
	e.state = next
	klog.V(2).Infof("Engine: card %d flipped (%s), phase=%s", id, next.Cards[id].Symbol, next.Phase())
	if next.Phase() == TwoFlipped {
		e.scheduleMatchCheckLocked()
	}
	e.notifyLocked()
}

// Restart deals a new deck and resets the turn. A pending match-check of the
// previous game is cancelled and can no longer touch the new game.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.cancelMatchCheckLocked()
	e.state = NewGameState(GenerateDeckWithRand(e.rng))
	klog.V(1).Infof("Engine: game restarted")
	e.notifyLocked()
}

// Close disposes of the engine: the pending match-check, if any, is cancelled
// and later requests are ignored. It is safe to call Close more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.cancelMatchCheckLocked()
	e.closed = true
}

// Pending returns whether a match-check is scheduled.
func (e *Engine) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.matchTimer != nil
}

func (e *Engine) scheduleMatchCheckLocked() {
	e.cancelMatchCheckLocked()
	generation := e.generation
	e.matchTimer = time.AfterFunc(e.cfg.MatchDelay, func() {
		e.checkForMatch(generation)
	})
}

// cancelMatchCheckLocked stops the pending timer and invalidates its callback,
// in case it already fired and is waiting for the lock.
func (e *Engine) cancelMatchCheckLocked() {
	e.generation++
	if e.matchTimer != nil {
		e.matchTimer.Stop()
		e.matchTimer = nil
	}
}

func (e *Engine) checkForMatch(generation uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || generation != e.generation {
		klog.V(2).Infof("Engine: stale match-check dropped")
		return
	}
	e.matchTimer = nil
	e.generation++
	next, matched, ok := e.state.Resolve()
	if !ok {
		return
	}
	klog.V(2).Infof("Engine: cards %d and %d resolved, matched=%v",
		e.state.FirstCard, e.state.SecondCard, matched)
	e.state = next
	if next.IsComplete() {
		klog.V(1).Infof("Engine: all %d pairs found", len(next.Cards)/2)
	}
	e.notifyLocked()
}

func (e *Engine) notifyLocked() {
	if e.onChange != nil {
		e.onChange(e.state.Clone())
	}
}
