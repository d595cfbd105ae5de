package anim

import (
	"github.com/lixenwraith/glint/easing"
)

// runEffect advances one animation by dt seconds through the executor
// for its kind. Branches shared by every kind live here: a missing
// target finishes silently with no draw, and an animation already
// Finished on entry just keeps its target cleared.
func runEffect(a *Animation, dt float64) {
	if a.Target == nil {
		a.State = Finished
		return
	}
	if a.State == Finished {
		a.Target.ClearTransparent()
		return
	}

	switch a.Kind {
	case Typewriter:
		updateTypewriter(a, dt)
	case Slide:
		updateSlide(a, dt)
	case FadeIn:
		updateFadeIn(a, dt)
	case FadeOut:
		updateFadeOut(a, dt)
	case Wave:
		updateWave(a, dt)
	case Rainbow:
		updateRainbow(a, dt)
	case Sprite:
		updateSprite(a, dt)
	default:
		a.State = Finished
	}
}

// progress returns eased progress for duration-bounded kinds.
// Callers guarantee Duration > 0.
func progress(a *Animation) float64 {
	return easing.Apply(a.Easing, a.Elapsed/a.Duration)
}
