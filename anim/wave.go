package anim

import (
	"math"
)

// phaseStep is the per-rune phase shift that ripples the wave along the
// text instead of bobbing it as a block
const phaseStep = 0.4

// updateWave redraws each rune with a sinusoidal vertical offset,
// phase-shifted by its index. Runs until externally removed.
func updateWave(a *Animation, dt float64) {
	a.Elapsed += dt

	a.Target.ClearTransparent()
	for i, r := range []rune(a.Text) {
		dy := int(math.Round(math.Sin(a.Elapsed*a.Speed+float64(i)*phaseStep) * a.Amplitude))
		a.Target.WriteText(a.X+i, a.Y+dy, string(r), a.Style)
	}
}
