// Package easing maps normalized animation progress onto shaped curves.
// All curves are pure functions of a single clamped input; the engine can
// sample them at any rate without accumulating state.
package easing

import (
	"fmt"

	"github.com/fogleman/ease"
)

// Kind identifies one of the built-in easing curves.
// The set is closed; Apply dispatches exhaustively over it.
type Kind uint8

const (
	Linear Kind = iota
	InQuad
	OutQuad
	InOutQuad
	InSine
	OutSine
	InOutSine
)

// String returns the script name of the kind
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case InQuad:
		return "in-quad"
	case OutQuad:
		return "out-quad"
	case InOutQuad:
		return "in-out-quad"
	case InSine:
		return "in-sine"
	case OutSine:
		return "out-sine"
	case InOutSine:
		return "in-out-sine"
	default:
		return "unknown"
	}
}

// ParseKind resolves a script name to a Kind. The empty string selects
// Linear; any other unknown name is an error so scene scripts fail loudly
// instead of silently easing differently than written.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "linear", "":
		return Linear, nil
	case "in-quad":
		return InQuad, nil
	case "out-quad":
		return OutQuad, nil
	case "in-out-quad":
		return InOutQuad, nil
	case "in-sine":
		return InSine, nil
	case "out-sine":
		return OutSine, nil
	case "in-out-sine":
		return InOutSine, nil
	}
	return Linear, fmt.Errorf("unknown easing kind %q", name)
}

// Apply maps normalized progress t through the curve identified by k.
// t is clamped to [0,1] first, so callers may feed raw elapsed/duration
// ratios without range checks. Unknown kinds degrade to Linear.
func Apply(k Kind, t float64) float64 {
	t = clamp01(t)
	switch k {
	case Linear:
		return ease.Linear(t)
	case InQuad:
		return ease.InQuad(t)
	case OutQuad:
		return ease.OutQuad(t)
	case InOutQuad:
		return ease.InOutQuad(t)
	case InSine:
		return ease.InSine(t)
	case OutSine:
		return ease.OutSine(t)
	case InOutSine:
		return ease.InOutSine(t)
	default:
		return t
	}
}

// clamp01 clamps x into [0,1]
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
