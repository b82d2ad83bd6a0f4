package model

import "fmt"

// CardID is a unique identifier for a card instance (e.g. "S13", "H01").
type CardID string

// Rank is a card rank, 1 (ace) through the deck's max rank (13 for a standard deck).
type Rank int

const (
	Ace  Rank = 1
	King Rank = 13
)

// Suit is a single-letter suit code (e.g. 'S', 'H', 'D', 'C').
type Suit byte

// PileKind names the pile that currently owns a card.
type PileKind string

const (
	PileDraw       PileKind = "draw"
	PileWaste      PileKind = "waste"
	PileTableau    PileKind = "tableau"
	PileFoundation PileKind = "foundation"
)

// Card is one playing card. Identity, rank and suit never change after NewCard.
type Card struct {
	ID     CardID   `json:"id"`
	Rank   Rank     `json:"rank"`
	Suit   Suit     `json:"suit"`
	FaceUp bool     `json:"faceUp"`
	Pile   PileKind `json:"pile"`

	// SlotID is the layout slot the card was dealt into. Only meaningful when Dealt is true.
	SlotID int  `json:"slotId"`
	Dealt  bool `json:"dealt"`

	// Highlighted is display metadata mirrored from the selection state.
	Highlighted bool `json:"highlighted"`
}

// NewCard creates a face-down card in the draw pile.
func NewCard(rank Rank, suit Suit) *Card {
	return &Card{
		ID:   MakeCardID(rank, suit),
		Rank: rank,
		Suit: suit,
		Pile: PileDraw,
	}
}

// MakeCardID formats the canonical id for a rank/suit pair.
func MakeCardID(rank Rank, suit Suit) CardID {
	return CardID(fmt.Sprintf("%c%02d", suit, int(rank)))
}

// BindSlot records the tableau slot a card was dealt into.
func (c *Card) BindSlot(id int) {
	c.SlotID = id
	c.Dealt = true
}

func (c *Card) String() string {
	if c == nil {
		return "<nil>"
	}
	return string(c.ID)
}
