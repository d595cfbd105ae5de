package anim

// updateTypewriter reveals a growing rune prefix of the text.
// Zero or negative duration reveals everything in a single update.
func updateTypewriter(a *Animation, dt float64) {
	a.Elapsed += dt

	if a.Duration <= 0 {
		a.Target.ClearTransparent()
		a.Target.WriteText(a.X, a.Y, a.Text, a.Style)
		a.State = Finished
		return
	}

	runes := []rune(a.Text)
	total := len(runes)

	p := progress(a)
	shown := min(total, int(p*float64(total)))

	a.Target.ClearTransparent()
	a.Target.WriteText(a.X, a.Y, string(runes[:shown]), a.Style)

	if shown >= total {
		a.State = Finished
	}
}
