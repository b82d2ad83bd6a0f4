package model

// Pile is an ordered collection of cards.
// Index 0 is the front (next card drawn from the draw pile, oldest card in waste);
// the last index is the top.
type Pile struct {
	Kind  PileKind `json:"kind"`
	Cards []*Card  `json:"cards"`
}

// NewPile creates an empty pile of the given kind.
func NewPile(kind PileKind) *Pile {
	return &Pile{Kind: kind, Cards: []*Card{}}
}

// Size returns the number of cards in the pile.
func (p *Pile) Size() int {
	return len(p.Cards)
}

// Empty reports whether the pile holds no cards.
func (p *Pile) Empty() bool {
	return len(p.Cards) == 0
}

// Top returns the most recently appended card, or nil if empty.
func (p *Pile) Top() *Card {
	if len(p.Cards) == 0 {
		return nil
	}
	return p.Cards[len(p.Cards)-1]
}

// Front returns the first card, or nil if empty.
func (p *Pile) Front() *Card {
	if len(p.Cards) == 0 {
		return nil
	}
	return p.Cards[0]
}

// TakeFront removes and returns the first card. Returns nil if empty (soft failure).
func (p *Pile) TakeFront() *Card {
	if len(p.Cards) == 0 {
		return nil
	}
	c := p.Cards[0]
	p.Cards[0] = nil
	p.Cards = p.Cards[1:]
	return c
}

// TakeTop removes and returns the top card. Returns nil if empty (soft failure).
func (p *Pile) TakeTop() *Card {
	if len(p.Cards) == 0 {
		return nil
	}
	c := p.Cards[len(p.Cards)-1]
	p.Cards = p.Cards[:len(p.Cards)-1]
	return c
}

// Append puts c on top and marks it as owned by this pile.
func (p *Pile) Append(c *Card) {
	c.Pile = p.Kind
	p.Cards = append(p.Cards, c)
}

// PushFront puts c at the front and marks it as owned by this pile.
func (p *Pile) PushFront(c *Card) {
	c.Pile = p.Kind
	p.Cards = append([]*Card{c}, p.Cards...)
}

// Remove deletes c from the pile. Returns false if c is not in the pile.
func (p *Pile) Remove(c *Card) bool {
	i := p.IndexOf(c)
	if i < 0 {
		return false
	}
	p.Cards = append(p.Cards[:i], p.Cards[i+1:]...)
	return true
}

// IndexOf returns the position of c, or -1.
func (p *Pile) IndexOf(c *Card) int {
	for i, x := range p.Cards {
		if x == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is in the pile.
func (p *Pile) Contains(c *Card) bool {
	return p.IndexOf(c) >= 0
}

// IDs returns the card ids in pile order.
func (p *Pile) IDs() []CardID {
	ids := make([]CardID, len(p.Cards))
	for i, c := range p.Cards {
		ids[i] = c.ID
	}
	return ids
}
