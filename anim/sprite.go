package anim

// updateSprite accumulates the frame clock in Elapsed and composites
// the current frame every update. The clock resets to zero on each
// advance rather than carrying the remainder, so one oversized dt
// advances at most one frame. Runs until externally removed.
func updateSprite(a *Animation, dt float64) {
	if len(a.Frames) == 0 {
		a.State = Finished
		return
	}
	if a.Speed <= 0 {
		a.Speed = 0.1
	}

	a.Elapsed += dt
	if a.Elapsed >= a.Speed {
		a.Elapsed = 0
		a.FrameIndex = (a.FrameIndex + 1) % len(a.Frames)
	}

	a.Target.ClearTransparent()
	a.Target.CompositeFrame(a.Frames[a.FrameIndex])
}
