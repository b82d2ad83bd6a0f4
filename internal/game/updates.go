package game

import (
	"pyramid/internal/layout"
	"pyramid/internal/model"
)

// UpdateKind says which presentation attribute an Update sets.
type UpdateKind string

const (
	UpdatePlacement UpdateKind = "placement"
	UpdateFace      UpdateKind = "face"
	UpdateHighlight UpdateKind = "highlight"
)

// TargetLayer is the depth group the active waste card is drawn in.
const TargetLayer = "Target"

// Vec3 is a board position; Z is the stacking depth.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Update is a fire-and-forget presentation request for one card.
// Only the fields belonging to Kind are meaningful.
type Update struct {
	Card        model.CardID `json:"card"`
	Kind        UpdateKind   `json:"kind"`
	Pos         Vec3         `json:"pos"`
	Layer       string       `json:"layer,omitempty"`
	Order       int          `json:"order"`
	FaceUp      bool         `json:"faceUp"`
	Highlighted bool         `json:"highlighted"`
}

// Sink receives presentation updates. Implementations must not call back into the Engine.
type Sink interface {
	Apply(u Update)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(u Update)

func (f SinkFunc) Apply(u Update) { f(u) }

type discardSink struct{}

func (discardSink) Apply(Update) {}

// Recorder is a Sink that keeps every update in order.
type Recorder struct {
	Updates []Update
}

func (r *Recorder) Apply(u Update) {
	r.Updates = append(r.Updates, u)
}

// For returns the updates for one card.
func (r *Recorder) For(id model.CardID) []Update {
	var out []Update
	for _, u := range r.Updates {
		if u.Card == id {
			out = append(out, u)
		}
	}
	return out
}

// Last returns the most recent update of the given kind for a card.
func (r *Recorder) Last(id model.CardID, kind UpdateKind) (Update, bool) {
	for i := len(r.Updates) - 1; i >= 0; i-- {
		if u := r.Updates[i]; u.Card == id && u.Kind == kind {
			return u, true
		}
	}
	return Update{}, false
}

// Reset drops recorded updates.
func (r *Recorder) Reset() {
	r.Updates = r.Updates[:0]
}

func scaled(l *layout.Layout, x, y float64) (float64, float64) {
	return l.Multiplier.X * x, l.Multiplier.Y * y
}

func (e *Engine) emitPlacement(c *model.Card, pos Vec3, layer string, order int) {
	e.sink.Apply(Update{Card: c.ID, Kind: UpdatePlacement, Pos: pos, Layer: layer, Order: order})
}

func (e *Engine) emitFace(c *model.Card) {
	e.sink.Apply(Update{Card: c.ID, Kind: UpdateFace, FaceUp: c.FaceUp})
}

func (e *Engine) emitHighlight(c *model.Card) {
	e.sink.Apply(Update{Card: c.ID, Kind: UpdateHighlight, Highlighted: c.Highlighted})
}

func (e *Engine) placeTableau(c *model.Card, s layout.Slot) {
	// Depth was validated with the layout.
	depth, _ := s.Depth()
	x, y := scaled(e.layout, s.X, s.Y)
	e.emitPlacement(c, Vec3{X: x, Y: y, Z: float64(-depth)}, s.Layer, 0)
	e.emitFace(c)
}

func (e *Engine) placeWaste(c *model.Card) {
	a := e.layout.WastePile
	x, y := scaled(e.layout, a.X, a.Y)
	e.emitPlacement(c, Vec3{X: x, Y: y}, a.Layer, -200+3*e.waste.Size())
	e.emitFace(c)
}

func (e *Engine) placeTarget(c *model.Card) {
	a := e.layout.WastePile
	x, y := scaled(e.layout, a.X, a.Y)
	e.emitPlacement(c, Vec3{X: x, Y: y}, TargetLayer, 0)
}

func (e *Engine) placeFoundation(c *model.Card) {
	a := e.layout.FoundationPile
	x, y := scaled(e.layout, a.X, a.Y)
	e.emitPlacement(c, Vec3{X: x, Y: y}, a.Layer, -200+3*e.foundation.Size())
	e.emitFace(c)
}

// refreshDrawPile restacks the draw pile with its horizontal stagger, all cards face-down.
func (e *Engine) refreshDrawPile() {
	a := e.layout.DrawPile
	x, y := scaled(e.layout, a.X, a.Y)
	for i, c := range e.draw.Cards {
		c.FaceUp = false
		pos := Vec3{X: x + a.XStagger*float64(i), Y: y, Z: 0.1 * float64(i)}
		e.emitPlacement(c, pos, a.Layer, -10*i)
		e.emitFace(c)
	}
}
