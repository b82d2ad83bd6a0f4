package layout

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed layouts/*.yaml
var embedded embed.FS

// Vec2 is a pair of board coordinates or scale factors.
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Slot describes one tableau position.
type Slot struct {
	ID       int     `yaml:"id" json:"id"`
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Layer    string  `yaml:"layer" json:"layer"`
	FaceUp   bool    `yaml:"faceUp" json:"faceUp"`
	HiddenBy []int   `yaml:"hiddenBy" json:"hiddenBy"`
}

// Depth returns the stacking depth encoded in the trailing character of the layer
// label (e.g. "Row 3" => 3).
func (s Slot) Depth() (int, error) {
	return layerDepth(s.Layer)
}

// Anchor is the board position and depth group of a non-tableau pile.
type Anchor struct {
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Layer    string  `yaml:"layer" json:"layer"`
	XStagger float64 `yaml:"xStagger" json:"xStagger"`
}

// Layout is the externally supplied board description. Read-only once loaded.
type Layout struct {
	Name           string `yaml:"name" json:"name"`
	Multiplier     Vec2   `yaml:"multiplier" json:"multiplier"`
	Slots          []Slot `yaml:"slots" json:"slots"`
	DrawPile       Anchor `yaml:"drawPile" json:"drawPile"`
	WastePile      Anchor `yaml:"wastePile" json:"wastePile"`
	FoundationPile Anchor `yaml:"foundationPile" json:"foundationPile"`
}

func (l *Layout) ApplyDefaults() {
	if l.Multiplier.X == 0 && l.Multiplier.Y == 0 {
		l.Multiplier = Vec2{X: 1, Y: 1}
	}
	if l.DrawPile.Layer == "" {
		l.DrawPile.Layer = "Draw"
	}
	if l.WastePile.Layer == "" {
		l.WastePile.Layer = "Waste"
	}
	if l.FoundationPile.Layer == "" {
		l.FoundationPile.Layer = "Foundation"
	}
	for i := range l.Slots {
		if l.Slots[i].HiddenBy == nil {
			l.Slots[i].HiddenBy = []int{}
		}
	}
}

// Slot returns the slot with the given id.
func (l *Layout) Slot(id int) (Slot, bool) {
	for _, s := range l.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

// Parse decodes a layout document. JSON documents (leading '{') go through
// encoding/json, everything else through yaml.v3. The result is defaulted and validated.
func Parse(b []byte) (*Layout, error) {
	var l Layout
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &l); err != nil {
			return nil, fmt.Errorf("decode json layout: %w", err)
		}
	} else if err := yaml.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("decode yaml layout: %w", err)
	}
	l.ApplyDefaults()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and parses a layout file.
func Load(path string) (*Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Default returns one of the embedded layouts ("pyramid", "mini").
func Default(name string) (*Layout, error) {
	b, err := embedded.ReadFile("layouts/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown layout %q", name)
	}
	return Parse(b)
}

// Names lists the embedded layouts.
func Names() []string {
	entries, err := embedded.ReadDir("layouts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Resolve loads ref as an embedded layout name first, then as a file path.
func Resolve(ref string) (*Layout, error) {
	for _, n := range Names() {
		if n == ref {
			return Default(ref)
		}
	}
	return Load(ref)
}
