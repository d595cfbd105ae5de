// @lixen: #focus{lifecycle[update,prune,hook]}
// @lixen: #interact{state[animation,chain],trigger[hook]}
package anim

import (
	"time"
)

// Hooks are optional host callbacks fired by the engine. Nil fields are
// skipped. Completion hooks are queued during an update and dispatched
// only after all table mutation, so a hook may call back into the
// engine freely; a re-entrant Update from inside a hook is dropped.
type Hooks struct {
	// ReleaseSurface asks the host to destroy the surface that backed
	// the named animation. Fired by Shutdown for every registered
	// animation.
	ReleaseSurface func(id string)
	// AnimationFinished fires once per Running to Finished transition
	// made by an effect executor.
	AnimationFinished func(id string)
	// ChainAdvanced fires when a chain activates a step, including the
	// first step of a loop restart.
	ChainAdvanced func(chainID string, stepIndex int)
	// ChainFinished fires when a finished chain leaves the chain table.
	ChainFinished func(chainID string)
}

// Engine is the animation registry and per-frame driver. All methods
// are single-threaded by contract: the host calls Update once per
// rendering frame and never concurrently with other engine calls.
type Engine struct {
	hooks      Hooks
	animations *table[*Animation]
	chains     *table[*Chain]

	pending     []func()
	updateDepth int
}

// NewEngine creates an empty engine with the given hooks
func NewEngine(hooks Hooks) *Engine {
	return &Engine{
		hooks:      hooks,
		animations: newTable[*Animation](),
		chains:     newTable[*Chain](),
	}
}

// Add registers a standalone animation, forcing it Running and active
// and clearing any prior chain ownership. A duplicate id silently
// replaces the prior entry.
func (e *Engine) Add(a *Animation) {
	a.State = Running
	a.Active = true
	a.ChainID = ""
	e.animations.Set(a.ID, a)
}

// AddChain registers a chain over the given members, in order. Every
// member is assigned to the chain and reset to the start of its
// timeline; only the first step begins active. Duplicate animation or
// chain ids silently replace prior entries.
func (e *Engine) AddChain(id string, members []*Animation, loop bool) *Chain {
	c := &Chain{
		ID:      id,
		Loop:    loop,
		stepIDs: make([]string, len(members)),
	}
	for i, a := range members {
		c.stepIDs[i] = a.ID
		a.ChainID = id
		a.Elapsed = 0
		a.State = Running
		a.Active = false
		e.animations.Set(a.ID, a)
	}
	// Activated after the member loop so a chain that repeats a step
	// still starts with its first step switched on
	if len(members) > 0 {
		members[0].Active = true
	}
	e.chains.Set(id, c)
	return c
}

// Remove cancels an animation: its surface is cleared and the record
// dropped. A chain still referencing the id will see the dangling step
// on its next advance and finish. Unknown ids are a no-op.
func (e *Engine) Remove(id string) {
	a, ok := e.animations.Get(id)
	if !ok {
		return
	}
	if a.Target != nil {
		a.Target.ClearTransparent()
	}
	e.animations.Remove(id)
}

// Get returns the registered animation for id
func (e *Engine) Get(id string) (*Animation, bool) {
	return e.animations.Get(id)
}

// Chain returns the registered chain for id
func (e *Engine) Chain(id string) (*Chain, bool) {
	return e.chains.Get(id)
}

// Len returns the number of registered animations
func (e *Engine) Len() int {
	return e.animations.Len()
}

// ChainCount returns the number of registered chains
func (e *Engine) ChainCount() int {
	return e.chains.Len()
}

// Update advances the whole engine by dt. Chains advance first so each
// frame's eligible steps are decided before any effect runs, then every
// active animation executes its effect, then finished standalone
// animations are pruned. Queued hooks fire last, once the tables are
// stable again.
func (e *Engine) Update(dt time.Duration) {
	if e.updateDepth > 0 {
		return
	}
	e.updateDepth++
	defer func() { e.updateDepth-- }()

	seconds := dt.Seconds()
	if seconds < 0 {
		seconds = 0
	}

	e.advanceChains()
	e.runEffects(seconds)
	e.pruneFinished()
	e.firePending()
}

// runEffects executes the effect phase in registration order, so any
// shared-surface conflict resolves to the later registration every
// frame instead of flickering
func (e *Engine) runEffects(dt float64) {
	for _, id := range e.animations.IDs() {
		a, ok := e.animations.Get(id)
		if !ok || !a.Active {
			continue
		}
		wasRunning := a.State == Running
		runEffect(a, dt)
		if wasRunning && a.State == Finished {
			e.queueAnimationFinished(a.ID)
		}
	}
}

// pruneFinished drops finished standalone animations. Chain members are
// never pruned here: they stay queryable for host-side reuse until
// removed explicitly or shut down.
func (e *Engine) pruneFinished() {
	var doomed []string
	for _, id := range e.animations.IDs() {
		a, ok := e.animations.Get(id)
		if ok && a.State == Finished && a.ChainID == "" {
			doomed = append(doomed, id)
		}
	}
	e.animations.RemoveBatch(doomed)
}

// Shutdown clears every registered animation's surface, requests
// surface release from the host per animation id, and empties both
// tables. Queued hooks are discarded, not fired.
func (e *Engine) Shutdown() {
	for _, id := range e.animations.IDs() {
		a, ok := e.animations.Get(id)
		if !ok {
			continue
		}
		if a.Target != nil {
			a.Target.ClearTransparent()
		}
		if e.hooks.ReleaseSurface != nil {
			e.hooks.ReleaseSurface(id)
		}
	}
	e.animations.Clear()
	e.chains.Clear()
	e.pending = nil
}

func (e *Engine) queueAnimationFinished(id string) {
	if e.hooks.AnimationFinished == nil {
		return
	}
	e.pending = append(e.pending, func() { e.hooks.AnimationFinished(id) })
}

func (e *Engine) queueChainAdvanced(chainID string, stepIndex int) {
	if e.hooks.ChainAdvanced == nil {
		return
	}
	e.pending = append(e.pending, func() { e.hooks.ChainAdvanced(chainID, stepIndex) })
}

func (e *Engine) queueChainFinished(chainID string) {
	if e.hooks.ChainFinished == nil {
		return
	}
	e.pending = append(e.pending, func() { e.hooks.ChainFinished(chainID) })
}

// firePending dispatches queued hooks in queue order
func (e *Engine) firePending() {
	if len(e.pending) == 0 {
		return
	}
	queued := e.pending
	e.pending = nil
	for _, fn := range queued {
		fn()
	}
}
