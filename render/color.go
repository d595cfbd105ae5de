package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// fgChannels extracts the foreground RGB of a style for channel math.
// Unset or non-decomposable foregrounds count as white, so scaling a
// default-styled text fades from full brightness.
func fgChannels(style tcell.Style) (int32, int32, int32) {
	fg, _, _ := style.Decompose()
	if !fg.Valid() {
		fg = tcell.ColorWhite
	}
	r, g, b := fg.RGB()
	if r < 0 {
		return 255, 255, 255
	}
	return r, g, b
}

// ScaleFg scales the style's foreground channels by factor in [0,1],
// truncating into 0-255. Background and attributes pass through.
func ScaleFg(style tcell.Style, factor float64) tcell.Style {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	r, g, b := fgChannels(style)
	return style.Foreground(tcell.NewRGBColor(
		int32(float64(r)*factor),
		int32(float64(g)*factor),
		int32(float64(b)*factor),
	))
}

// RainbowFg replaces the style's foreground with a hue derived from
// phase: three sines 120 degrees apart mapped onto 0-255 per channel.
// Advancing phase cycles the full hue wheel; background and attributes
// pass through.
func RainbowFg(style tcell.Style, phase float64) tcell.Style {
	const third = 2 * math.Pi / 3
	r := int32((math.Sin(phase) + 1) * 127.5)
	g := int32((math.Sin(phase+third) + 1) * 127.5)
	b := int32((math.Sin(phase+2*third) + 1) * 127.5)
	return style.Foreground(tcell.NewRGBColor(r, g, b))
}
