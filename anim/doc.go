// Package anim is the time-driven animation and sequencing engine.
//
// Features:
//   - Seven effect kinds: typewriter, slide, fade in/out, wave, rainbow, sprite
//   - Eased progress curves via the easing package
//   - Ordered, optionally looping chains of effects sharing one timeline
//   - Frame-stepped updates: the host calls Engine.Update once per frame
//
// The engine never touches a terminal. Each effect writes through the
// render.Surface capability its animation was constructed with; layer
// compositing and screen output stay on the host side.
package anim
