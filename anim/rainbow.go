package anim

import (
	"github.com/lixenwraith/glint/render"
)

// hueStep is the per-rune phase shift that spreads the hue cycle along
// the text
const hueStep = 0.3

// updateRainbow redraws each rune in its own cycling foreground hue,
// preserving the base style's background and attributes. Runs until
// externally removed.
func updateRainbow(a *Animation, dt float64) {
	a.Elapsed += dt

	a.Target.ClearTransparent()
	for i, r := range []rune(a.Text) {
		phase := a.Elapsed*a.ColorOffset + float64(i)*hueStep
		a.Target.WriteText(a.X+i, a.Y, string(r), render.RainbowFg(a.Style, phase))
	}
}
