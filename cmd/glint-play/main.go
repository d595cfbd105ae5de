package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glint/anim"
	"github.com/lixenwraith/glint/render"
	"github.com/lixenwraith/glint/script"
)

type Player struct {
	screen tcell.Screen
	comp   *render.Compositor
	engine *anim.Engine
}

func NewPlayer(scene *script.Scene) (*Player, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	p := &Player{
		screen: screen,
		comp:   render.NewCompositor(),
	}
	p.engine = anim.NewEngine(anim.Hooks{
		ReleaseSurface: p.comp.ReleaseLayer,
	})

	if err := scene.Build(p.engine, p.comp); err != nil {
		screen.Fini()
		return nil, err
	}

	return p, nil
}

func (p *Player) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	}

	return true
}

func (p *Player) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- p.screen.PollEvent()
		}
	}()

	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if !p.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last)
			last = now

			p.engine.Update(dt)

			p.screen.Clear()
			p.comp.CompositeTo(p.screen)
			p.screen.Show()
		}
	}
}

func (p *Player) cleanup() {
	p.engine.Shutdown()
	p.screen.Fini()
}

func main() {
	scenePath := flag.String("scene", "scenes/showcase.yaml", "YAML scene file.")
	flag.Parse()

	scene, err := script.LoadFile(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	player, err := NewPlayer(scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer player.cleanup()

	player.run()
}
