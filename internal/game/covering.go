package game

import (
	"fmt"

	"pyramid/internal/model"
)

// covered reports whether any of c's covering slots still holds a tableau card.
func (e *Engine) covered(c *model.Card) (bool, error) {
	slot, ok := e.slots[c.SlotID]
	if !ok {
		return false, fmt.Errorf("card %s slot %d: %w", c.ID, c.SlotID, ErrUnknownSlot)
	}
	hidden := false
	for _, id := range slot.HiddenBy {
		cover, ok := e.index[id]
		if !ok {
			return false, fmt.Errorf("slot %d hidden by %d: %w", slot.ID, id, ErrUnknownSlot)
		}
		if cover == nil || cover.Pile == model.PileTableau {
			hidden = true
		}
	}
	return hidden, nil
}

// RefreshFaceUps recomputes the face-up flag of every tableau card from the covering
// rule and emits a face update for each card that flipped. Calling it twice without
// an intervening move changes nothing the second time. On error no flag is touched.
func (e *Engine) RefreshFaceUps() error {
	next := make([]bool, len(e.tableau.Cards))
	for i, c := range e.tableau.Cards {
		hidden, err := e.covered(c)
		if err != nil {
			return err
		}
		next[i] = !hidden
	}
	for i, c := range e.tableau.Cards {
		if c.FaceUp != next[i] {
			c.FaceUp = next[i]
			e.emitFace(c)
		}
	}
	return nil
}
