package layout

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalid       = errors.New("invalid layout")
	ErrNoSlots       = fmt.Errorf("%w: no tableau slots", ErrInvalid)
	ErrDuplicateSlot = fmt.Errorf("%w: duplicate slot id", ErrInvalid)
	ErrUnknownCover  = fmt.Errorf("%w: hiddenBy names an unknown slot", ErrInvalid)
	ErrSelfCover     = fmt.Errorf("%w: slot hidden by itself", ErrInvalid)
	ErrBadLayer      = fmt.Errorf("%w: layer must end in a depth digit", ErrInvalid)
	ErrBadMultiplier = fmt.Errorf("%w: multiplier must be positive", ErrInvalid)
)

// Validate checks that every covering reference resolves to a slot in this layout,
// so that covering lookups during play can never miss.
func (l *Layout) Validate() error {
	if len(l.Slots) == 0 {
		return ErrNoSlots
	}
	if l.Multiplier.X <= 0 || l.Multiplier.Y <= 0 {
		return ErrBadMultiplier
	}

	ids := make(map[int]bool, len(l.Slots))
	for _, s := range l.Slots {
		if ids[s.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateSlot, s.ID)
		}
		ids[s.ID] = true
		if _, err := s.Depth(); err != nil {
			return fmt.Errorf("slot %d: %w", s.ID, err)
		}
	}

	for _, s := range l.Slots {
		for _, c := range s.HiddenBy {
			if c == s.ID {
				return fmt.Errorf("%w: %d", ErrSelfCover, s.ID)
			}
			if !ids[c] {
				return fmt.Errorf("%w: slot %d hidden by %d", ErrUnknownCover, s.ID, c)
			}
		}
	}
	return nil
}

func layerDepth(layer string) (int, error) {
	if layer == "" {
		return 0, fmt.Errorf("%w: empty layer", ErrBadLayer)
	}
	d, err := strconv.Atoi(layer[len(layer)-1:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLayer, layer)
	}
	return d, nil
}
