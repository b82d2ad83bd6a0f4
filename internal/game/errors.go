package game

import "errors"

// Precondition violations. The engine never half-applies a move that returns one of these.
var (
	ErrDrawPileEmpty  = errors.New("draw pile is empty")
	ErrUnknownSlot    = errors.New("covering slot not in tableau index")
	ErrUnknownCard    = errors.New("unknown card")
	ErrNotDealt       = errors.New("game has not been dealt")
	ErrAlreadyDealt   = errors.New("game already dealt")
	ErrInvalidDeck    = errors.New("invalid deck")
	ErrInvariantBroke = errors.New("invariant violated")
)
