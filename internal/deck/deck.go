package deck

import (
	"fmt"
	"math/rand"
	"time"

	"pyramid/internal/model"
)

// StandardSuits is the default suit order (spades, hearts, diamonds, clubs).
const StandardSuits = "SHDC"

// Deck is an ordered sequence of cards. Index 0 is drawn first.
type Deck struct {
	Cards   []*model.Card `json:"cards"`
	MaxRank model.Rank    `json:"max_rank"`
}

// Build creates one card per (suit, rank) pair for ranks 1..maxRank, suit-major.
func Build(maxRank model.Rank, suits string) (*Deck, error) {
	if maxRank < 1 {
		return nil, fmt.Errorf("max rank must be at least 1, got %d", maxRank)
	}
	if suits == "" {
		return nil, fmt.Errorf("at least one suit is required")
	}

	seen := make(map[byte]bool, len(suits))
	cards := make([]*model.Card, 0, int(maxRank)*len(suits))
	for i := 0; i < len(suits); i++ {
		s := suits[i]
		if seen[s] {
			return nil, fmt.Errorf("duplicate suit %q", s)
		}
		seen[s] = true
		for r := model.Ace; r <= maxRank; r++ {
			cards = append(cards, model.NewCard(r, model.Suit(s)))
		}
	}
	return &Deck{Cards: cards, MaxRank: maxRank}, nil
}

// Standard builds the 52-card deck.
func Standard() *Deck {
	d, _ := Build(model.King, StandardSuits)
	return d
}

// Shuffle permutes the deck in place. A zero seed uses the current time.
// It returns the seed actually used so a game can be replayed.
func (d *Deck) Shuffle(seed int64) int64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
	return seed
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Find returns the card with the given id, or nil.
func (d *Deck) Find(id model.CardID) *model.Card {
	for _, c := range d.Cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// MoveToFront reorders the deck so the given cards come first, in order.
// Tests and puzzle setups use it to stack a known deal.
func (d *Deck) MoveToFront(ids ...model.CardID) error {
	front := make([]*model.Card, 0, len(ids))
	picked := make(map[*model.Card]bool, len(ids))
	for _, id := range ids {
		c := d.Find(id)
		if c == nil {
			return fmt.Errorf("card %s not in deck", id)
		}
		if picked[c] {
			return fmt.Errorf("card %s listed twice", id)
		}
		picked[c] = true
		front = append(front, c)
	}
	rest := make([]*model.Card, 0, len(d.Cards)-len(front))
	for _, c := range d.Cards {
		if !picked[c] {
			rest = append(rest, c)
		}
	}
	d.Cards = append(front, rest...)
	return nil
}
