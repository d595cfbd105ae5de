package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glint/anim"
	"github.com/lixenwraith/glint/easing"
	"github.com/lixenwraith/glint/render"
)

const (
	titleText    = "G L I N T"
	waveText     = "~ riding the sine ~"
	spectrumText = "every rune gets its own hue"
	footerText   = "press q or esc to quit"

	backdropDots = 40
)

type Demo struct {
	screen tcell.Screen
	comp   *render.Compositor
	engine *anim.Engine

	// Audio
	audioInit bool
}

func NewDemo(mute bool) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &Demo{
		screen: screen,
		comp:   render.NewCompositor(),
	}

	if !mute {
		if err := d.initAudio(); err != nil {
			// Non-fatal, demo can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	d.engine = anim.NewEngine(anim.Hooks{
		ReleaseSurface: d.comp.ReleaseLayer,
		ChainAdvanced:  d.playStepCue,
	})

	d.buildShowcase()

	return d, nil
}

func (d *Demo) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

// playStepCue beeps whenever the title chain hands off to its next step.
func (d *Demo) playStepCue(chainID string, stepIndex int) {
	if !d.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(60 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 660+220*float64(stepIndex))

	speaker.Play(beep.Take(duration, sine))
}

func styleFromColor(c colorful.Color) tcell.Style {
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func (d *Demo) buildShowcase() {
	w, h := d.screen.Size()

	cool, _ := colorful.Hex("#7aa2f7")
	warm, _ := colorful.Hex("#f7768e")

	backdrop := d.comp.AcquireLayer("backdrop", 0, 0, w, h, 0)
	d.scatterDots(backdrop)

	title := d.comp.AcquireLayer("title", 0, 0, len(titleText), 1, 10)
	wave := d.comp.AcquireLayer("wave", 0, 0, len(waveText), 5, 6)
	spectrum := d.comp.AcquireLayer("spectrum", 0, 0, len(spectrumText), 1, 6)
	footer := d.comp.AcquireLayer("footer", 0, 0, len(footerText), 1, 5)
	runner := d.comp.AcquireLayer("runner", 0, 0, 1, 1, 8)

	d.layout()

	titleStyle := styleFromColor(cool).Bold(true)
	d.engine.AddChain("title", []*anim.Animation{
		anim.NewTypewriter("title-in", title, 0, 0, titleText, titleStyle, 2.0, easing.OutQuad),
		anim.NewFadeOut("title-out", title, 0, 0, titleText, titleStyle, 1.2, easing.InQuad),
	}, true)

	// Wave bobs within its layer, so the anchor row sits mid-height.
	d.engine.Add(anim.NewWave("wave", wave, 0, 2, waveText, styleFromColor(cool.BlendHcl(warm, 0.35)), 2.2, 1.8))
	d.engine.Add(anim.NewRainbow("spectrum", spectrum, 0, 0, spectrumText, tcell.StyleDefault, 1.6))
	d.engine.Add(anim.NewSlide("footer", footer, 0, 0, footerText,
		tcell.StyleDefault.Foreground(tcell.ColorGray), 1.4, easing.OutQuad, 24))

	// Pulsing orb, colour ramped across the palette per frame.
	glyphs := []string{"·", "o", "O", "@", "O", "o"}
	frames := make([]*render.Frame, 0, len(glyphs))
	for i, g := range glyphs {
		t := float64(i) / float64(len(glyphs)-1)
		frames = append(frames, render.NewFrameFromStrings(styleFromColor(cool.BlendHcl(warm, t)), g))
	}
	d.engine.Add(anim.NewSprite("runner", runner, frames, 0.12))
}

func (d *Demo) scatterDots(backdrop *render.Layer) {
	w, h := backdrop.Size()
	backdrop.ClearTransparent()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 70, 90))
	for i := 0; i < backdropDots; i++ {
		backdrop.WriteText(rand.Intn(w), rand.Intn(h), "·", style)
	}
}

// layout recenters every layer against the current screen size.
func (d *Demo) layout() {
	w, h := d.screen.Size()
	centerY := h / 2

	move := func(id string, x, y int) {
		if l, ok := d.comp.Layer(id); ok {
			l.Move(x, y)
		}
	}

	move("title", (w-len(titleText))/2, centerY-6)
	move("runner", w/2, centerY-8)
	move("wave", (w-len(waveText))/2, centerY-3)
	move("spectrum", (w-len(spectrumText))/2, centerY+3)
	move("footer", (w-len(footerText))/2, h-2)
}

func (d *Demo) handleResize() {
	w, h := d.screen.Size()

	// Animation layers keep their cells and simply move. The backdrop
	// carries no animation, so it is rebuilt at the new size.
	backdrop := d.comp.AcquireLayer("backdrop", 0, 0, w, h, 0)
	d.scatterDots(backdrop)

	d.layout()
}

func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		d.handleResize()
	}

	return true
}

func (d *Demo) draw() {
	d.screen.Clear()
	d.comp.CompositeTo(d.screen)
	d.screen.Show()
}

func (d *Demo) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last)
			last = now

			d.engine.Update(dt)
			d.draw()
		}
	}
}

func (d *Demo) cleanup() {
	d.engine.Shutdown()
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}

func main() {
	mute := flag.Bool("mute", false, "Disable audio cues.")
	flag.Parse()

	demo, err := NewDemo(*mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer demo.cleanup()

	demo.run()
}
