package game

import (
	"fmt"

	"pyramid/internal/layout"
	"pyramid/internal/model"
)

// Snapshot is a read-only copy of the pile contents, front to top.
type Snapshot struct {
	Session    string         `json:"session"`
	Draw       []model.CardID `json:"draw"`
	Waste      []model.CardID `json:"waste"`
	Tableau    []model.CardID `json:"tableau"`
	Foundation []model.CardID `json:"foundation"`
	Target     model.CardID   `json:"target,omitempty"`
	Selected   model.CardID   `json:"selected,omitempty"`
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Session:    e.ID.String(),
		Draw:       e.draw.IDs(),
		Waste:      e.waste.IDs(),
		Tableau:    e.tableau.IDs(),
		Foundation: e.foundation.IDs(),
	}
	if e.target != nil {
		s.Target = e.target.ID
	}
	if e.selected != nil {
		s.Selected = e.selected.ID
	}
	return s
}

// Card returns the card with the given id, or nil.
func (e *Engine) Card(id model.CardID) *model.Card {
	return e.cards[id]
}

// Target returns the active waste card, or nil.
func (e *Engine) Target() *model.Card {
	return e.target
}

// Selected returns the highlighted tableau card, or nil.
func (e *Engine) Selected() *model.Card {
	return e.selected
}

// SlotCard returns the card dealt into a layout slot, wherever it is now.
func (e *Engine) SlotCard(slotID int) *model.Card {
	return e.index[slotID]
}

// Layout returns the board description the game was dealt with.
func (e *Engine) Layout() *layout.Layout {
	return e.layout
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// Size returns the number of cards in a pile.
func (e *Engine) Size(kind model.PileKind) int {
	if p := e.pile(kind); p != nil {
		return p.Size()
	}
	return 0
}

// Won reports whether draw, waste and tableau are all empty.
func (e *Engine) Won() bool {
	return e.dealt && e.draw.Empty() && e.waste.Empty() && e.tableau.Empty()
}

// CheckInvariants verifies pile exclusivity, the target invariant and the selection
// invariant, returning the first violation found.
func (e *Engine) CheckInvariants() error {
	seen := make(map[*model.Card]model.PileKind, len(e.order))
	for _, p := range []*model.Pile{e.draw, e.waste, e.tableau, e.foundation} {
		for _, c := range p.Cards {
			if prev, dup := seen[c]; dup {
				return fmt.Errorf("%w: %s in both %s and %s", ErrInvariantBroke, c.ID, prev, p.Kind)
			}
			seen[c] = p.Kind
			if c.Pile != p.Kind {
				return fmt.Errorf("%w: %s held by %s but marked %s", ErrInvariantBroke, c.ID, p.Kind, c.Pile)
			}
		}
	}
	for _, c := range e.order {
		if _, ok := seen[c]; !ok {
			return fmt.Errorf("%w: %s is in no pile", ErrInvariantBroke, c.ID)
		}
	}
	if len(seen) != len(e.order) {
		return fmt.Errorf("%w: piles hold %d cards, game has %d", ErrInvariantBroke, len(seen), len(e.order))
	}

	if e.target != nil && e.target != e.waste.Top() {
		return fmt.Errorf("%w: target %s is not the waste top", ErrInvariantBroke, e.target.ID)
	}

	if e.selected != nil {
		if e.selected.Pile != model.PileTableau {
			return fmt.Errorf("%w: selected %s left the tableau", ErrInvariantBroke, e.selected.ID)
		}
		if !e.selected.Highlighted {
			return fmt.Errorf("%w: selected %s is not highlighted", ErrInvariantBroke, e.selected.ID)
		}
	}
	for _, c := range e.order {
		if c.Highlighted && c != e.selected {
			return fmt.Errorf("%w: %s highlighted but not selected", ErrInvariantBroke, c.ID)
		}
	}
	return nil
}
