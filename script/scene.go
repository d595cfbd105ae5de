// @lixen: #focus{config[scene,yaml,validate]}
// Package script loads declarative scene documents: YAML files that
// describe layers, animations, and chains, and build them into a live
// engine and compositor. The update path never touches this package;
// scripts are a host-side convenience.
package script

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/glint/anim"
	"github.com/lixenwraith/glint/easing"
)

// LayerDecl places one compositor layer in screen space
type LayerDecl struct {
	ID     string `yaml:"id"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Z      int    `yaml:"z"`
}

// AnimationDecl declares one animation bound to a declared layer.
// Kind-specific fields are ignored by kinds that do not use them.
type AnimationDecl struct {
	ID    string `yaml:"id"`
	Kind  string `yaml:"kind"`
	Layer string `yaml:"layer"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Text  string `yaml:"text"`

	// Base style: hex colors like "#7aa2f7"; empty keeps the terminal
	// default
	Fg   string `yaml:"fg"`
	Bg   string `yaml:"bg"`
	Bold bool   `yaml:"bold"`

	Duration float64 `yaml:"duration"`
	Easing   string  `yaml:"easing"`

	Speed       float64    `yaml:"speed"`        // slide distance, wave rate, sprite interval
	Amplitude   float64    `yaml:"amplitude"`    // wave swing
	ColorOffset float64    `yaml:"color_offset"` // rainbow phase rate
	Frames      [][]string `yaml:"frames"`       // sprite string art, one list of rows per frame
}

// ChainDecl sequences declared animations by id
type ChainDecl struct {
	ID    string   `yaml:"id"`
	Steps []string `yaml:"steps"`
	Loop  bool     `yaml:"loop"`
}

// Scene is one parsed scene document. Animations referenced by a chain
// become chain members; the rest register standalone.
type Scene struct {
	Name       string          `yaml:"scene"`
	Layers     []LayerDecl     `yaml:"layers"`
	Animations []AnimationDecl `yaml:"animations"`
	Chains     []ChainDecl     `yaml:"chains"`
}

// Load parses and validates a scene document
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads a scene document from disk
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// validate rejects anything the engine would otherwise absorb silently:
// scripts fail loudly where the update path degrades gracefully.
func (s *Scene) validate() error {
	layerIDs := make(map[string]struct{}, len(s.Layers))
	for _, l := range s.Layers {
		if l.ID == "" {
			return fmt.Errorf("layer with empty id")
		}
		if _, dup := layerIDs[l.ID]; dup {
			return fmt.Errorf("duplicate layer id %q", l.ID)
		}
		if l.Width <= 0 || l.Height <= 0 {
			return fmt.Errorf("layer %q: non-positive size %dx%d", l.ID, l.Width, l.Height)
		}
		layerIDs[l.ID] = struct{}{}
	}

	animIDs := make(map[string]struct{}, len(s.Animations))
	for _, d := range s.Animations {
		if d.ID == "" {
			return fmt.Errorf("animation with empty id")
		}
		if _, dup := animIDs[d.ID]; dup {
			return fmt.Errorf("duplicate animation id %q", d.ID)
		}
		kind, err := anim.ParseKind(d.Kind)
		if err != nil {
			return fmt.Errorf("animation %q: %w", d.ID, err)
		}
		if _, err := easing.ParseKind(d.Easing); err != nil {
			return fmt.Errorf("animation %q: %w", d.ID, err)
		}
		if _, ok := layerIDs[d.Layer]; !ok {
			return fmt.Errorf("animation %q: unknown layer %q", d.ID, d.Layer)
		}
		if _, err := parseStyle(d); err != nil {
			return err
		}
		if kind == anim.Sprite && len(d.Frames) == 0 {
			return fmt.Errorf("sprite %q declares no frames", d.ID)
		}
		animIDs[d.ID] = struct{}{}
	}

	chainIDs := make(map[string]struct{}, len(s.Chains))
	owner := make(map[string]string)
	for _, c := range s.Chains {
		if c.ID == "" {
			return fmt.Errorf("chain with empty id")
		}
		if _, dup := chainIDs[c.ID]; dup {
			return fmt.Errorf("duplicate chain id %q", c.ID)
		}
		if len(c.Steps) == 0 {
			return fmt.Errorf("chain %q has no steps", c.ID)
		}
		for _, step := range c.Steps {
			if _, ok := animIDs[step]; !ok {
				return fmt.Errorf("chain %q: unknown step %q", c.ID, step)
			}
			if prev, taken := owner[step]; taken && prev != c.ID {
				return fmt.Errorf("animation %q owned by chains %q and %q", step, prev, c.ID)
			}
			owner[step] = c.ID
		}
		chainIDs[c.ID] = struct{}{}
	}
	return nil
}
