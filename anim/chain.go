// @lixen: #focus{lifecycle[chain,step,loop]}
// @lixen: #interact{state[chain],trigger[advance]}
package anim

// Chain sequences an ordered group of animations: one member runs at a
// time, and its completion hands the timeline to the next. Step order
// is fixed at creation; a looping chain restarts from the first step
// instead of finishing.
type Chain struct {
	ID    string
	Loop  bool
	State State

	stepIDs      []string
	currentIndex int
}

// StepIDs returns a copy of the ordered member animation ids
func (c *Chain) StepIDs() []string {
	out := make([]string, len(c.stepIDs))
	copy(out, c.stepIDs)
	return out
}

// CurrentIndex returns the index of the step currently holding the
// chain's timeline
func (c *Chain) CurrentIndex() int {
	return c.currentIndex
}

// advanceChains runs the chain-advance phase. Finished chains are
// collected and removed only after the full pass; the table is never
// mutated while being iterated.
func (e *Engine) advanceChains() {
	var doomed []string
	for _, id := range e.chains.IDs() {
		c, ok := e.chains.Get(id)
		if !ok || c.State != Running {
			continue
		}
		e.advanceChain(c)
		if c.State == Finished {
			doomed = append(doomed, id)
			e.queueChainFinished(id)
		}
	}
	e.chains.RemoveBatch(doomed)
}

// advanceChain applies one frame of the chain state machine: finish on
// an empty or dangling step list, hand the timeline forward when the
// current step has finished, otherwise leave everything running.
func (e *Engine) advanceChain(c *Chain) {
	if len(c.stepIDs) == 0 {
		c.State = Finished
		return
	}

	cur, ok := e.animations.Get(c.stepIDs[c.currentIndex])
	if !ok {
		// Dangling step: the member was removed out from under the chain
		c.State = Finished
		return
	}
	if cur.State != Finished {
		return
	}

	// Current step complete: switch it off and clear what it drew
	cur.Active = false
	if cur.Target != nil {
		cur.Target.ClearTransparent()
	}

	if c.currentIndex+1 < len(c.stepIDs) {
		c.currentIndex++
		e.activateStep(c, false)
		return
	}
	if c.Loop {
		c.currentIndex = 0
		e.activateStep(c, true)
		return
	}
	c.State = Finished
}

// activateStep resets and starts the chain's current step. A loop
// restart pre-clears the step's surface so the first frame of the new
// cycle never shows the previous cycle's final state.
func (e *Engine) activateStep(c *Chain, preclear bool) {
	next, ok := e.animations.Get(c.stepIDs[c.currentIndex])
	if !ok {
		c.State = Finished
		return
	}
	next.Elapsed = 0
	next.State = Running
	next.Active = true
	if preclear && next.Target != nil {
		next.Target.ClearTransparent()
	}
	e.queueChainAdvanced(c.ID, c.currentIndex)
}
