package game

import (
	"fmt"

	"pyramid/internal/model"
)

// piles owns card-to-pile membership. Every card is in exactly one of the four piles.
type piles struct {
	draw       *model.Pile
	waste      *model.Pile
	tableau    *model.Pile
	foundation *model.Pile

	// target is nil or the top of waste.
	target *model.Card

	// index maps layout slot id to the card dealt there. Entries are never removed;
	// Card.Pile is the live membership signal.
	index map[int]*model.Card
}

func newPiles() piles {
	return piles{
		draw:       model.NewPile(model.PileDraw),
		waste:      model.NewPile(model.PileWaste),
		tableau:    model.NewPile(model.PileTableau),
		foundation: model.NewPile(model.PileFoundation),
		index:      make(map[int]*model.Card),
	}
}

func (p *piles) pile(kind model.PileKind) *model.Pile {
	switch kind {
	case model.PileDraw:
		return p.draw
	case model.PileWaste:
		return p.waste
	case model.PileTableau:
		return p.tableau
	case model.PileFoundation:
		return p.foundation
	}
	return nil
}

// drawNext removes and returns the first card of the draw pile.
func (e *Engine) drawNext() (*model.Card, error) {
	c := e.draw.TakeFront()
	if c == nil {
		return nil, ErrDrawPileEmpty
	}
	return c, nil
}

// dealTableau moves one card per layout slot into the tableau, in layout order.
func (e *Engine) dealTableau() error {
	if need, have := len(e.layout.Slots), e.draw.Size(); have < need {
		return fmt.Errorf("deal needs %d cards, draw pile has %d: %w", need, have, ErrDrawPileEmpty)
	}
	for _, s := range e.layout.Slots {
		c, err := e.drawNext()
		if err != nil {
			return err
		}
		c.FaceUp = s.FaceUp
		c.BindSlot(s.ID)
		e.tableau.Append(c)
		e.index[s.ID] = c
		e.placeTableau(c, s)
	}
	return nil
}

// sendToWaste files c on the waste pile and makes it the target. The current target
// is already in the waste pile and is not appended twice.
func (e *Engine) sendToWaste(c *model.Card) {
	if c != e.target {
		e.waste.Append(c)
	}
	c.FaceUp = true
	e.target = c
	e.placeWaste(c)
}

// promoteNewTarget retires the outgoing target into the waste fan and puts c on top.
func (e *Engine) promoteNewTarget(c *model.Card) {
	if e.target != nil {
		e.sendToWaste(e.target)
	}
	e.sendToWaste(c)
	e.target = c
	e.placeTarget(c)
}

// sendToFoundation removes c from whichever pile holds it and puts it on the foundation.
func (e *Engine) sendToFoundation(c *model.Card) {
	if p := e.pile(c.Pile); p != nil {
		p.Remove(c)
	}
	e.foundation.Append(c)
	c.FaceUp = true
	e.placeFoundation(c)
}

// recycleWasteToDraw puts the whole waste pile in front of the draw pile so that the
// last card into waste is the first card drawn. Target and selection are cleared.
func (e *Engine) recycleWasteToDraw() int {
	n := e.waste.Size()
	e.target = nil
	e.clearSelection()
	for !e.waste.Empty() {
		e.draw.PushFront(e.waste.TakeFront())
	}
	return n
}

// retireTarget moves the target to the foundation and picks the next target:
// the new waste top, or a fresh draw when waste ran out.
func (e *Engine) retireTarget() error {
	t := e.target
	if t == nil {
		return nil
	}
	e.waste.Remove(t)
	e.sendToFoundation(t)
	e.target = nil

	if !e.waste.Empty() {
		e.target = e.waste.Top()
		e.placeTarget(e.target)
		return nil
	}
	if e.draw.Empty() {
		return nil
	}
	c, err := e.drawNext()
	if err != nil {
		return err
	}
	e.promoteNewTarget(c)
	e.refreshDrawPile()
	return nil
}
