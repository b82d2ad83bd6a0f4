package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pyramid/internal/layout"
	"pyramid/internal/model"
	"pyramid/internal/telemetry"
)

// Outcome names what a single activation did.
type Outcome string

const (
	OutcomeNone        Outcome = "none"
	OutcomeDrew        Outcome = "drew"
	OutcomeRecycled    Outcome = "recycled"
	OutcomeSelected    Outcome = "selected"
	OutcomeKingRetired Outcome = "king_retired"
	OutcomePairRetired Outcome = "pair_retired"
)

// Rules holds the tunable parts of the ruleset.
type Rules struct {
	// MaxRank is the king rank. Two cards match when their ranks sum to it.
	MaxRank model.Rank
	// RequireFaceUp makes activations of face-down tableau cards no-ops.
	RequireFaceUp bool
}

// EventRecorder receives one event per applied move. telemetry.MemoryRepository satisfies it.
type EventRecorder interface {
	RecordEvent(session string, eventType telemetry.EventType, metadata telemetry.EventMetadata) error
}

type Options struct {
	// Rules.MaxRank defaults to the highest rank in the deck.
	Rules  Rules
	Sink   Sink
	Logger *zap.Logger
	Events EventRecorder
}

// Engine is one game session. It owns every card and processes activations one at a
// time; it is not safe for concurrent use.
type Engine struct {
	ID uuid.UUID

	piles
	layout   *layout.Layout
	slots    map[int]layout.Slot
	cards    map[model.CardID]*model.Card
	order    []*model.Card
	selected *model.Card
	rules    Rules
	dealt    bool

	sink   Sink
	log    *zap.Logger
	events EventRecorder
}

type ActivateResult struct {
	Outcome Outcome        `json:"outcome"`
	Retired []model.CardID `json:"retired,omitempty"`
	Target  model.CardID   `json:"target,omitempty"`
	Won     bool           `json:"won"`
}

// New registers cards, in order, as the draw pile. Call Deal before Activate.
func New(l *layout.Layout, cards []*model.Card, opts Options) (*Engine, error) {
	if l == nil {
		return nil, errors.New("layout is required")
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		ID:     uuid.New(),
		piles:  newPiles(),
		layout: l,
		slots:  make(map[int]layout.Slot, len(l.Slots)),
		cards:  make(map[model.CardID]*model.Card, len(cards)),
		order:  make([]*model.Card, 0, len(cards)),
		rules:  opts.Rules,
		sink:   opts.Sink,
		events: opts.Events,
	}
	for _, s := range l.Slots {
		e.slots[s.ID] = s
	}

	var maxRank model.Rank
	for _, c := range cards {
		if c == nil {
			return nil, fmt.Errorf("%w: nil card", ErrInvalidDeck)
		}
		if _, dup := e.cards[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidDeck, c.ID)
		}
		if c.Rank < model.Ace {
			return nil, fmt.Errorf("%w: card %s has rank %d", ErrInvalidDeck, c.ID, c.Rank)
		}
		if c.Rank > maxRank {
			maxRank = c.Rank
		}
		c.FaceUp = false
		c.Highlighted = false
		e.cards[c.ID] = c
		e.order = append(e.order, c)
		e.draw.Append(c)
	}

	if e.rules.MaxRank == 0 {
		e.rules.MaxRank = maxRank
	}
	if e.rules.MaxRank < 2 {
		return nil, fmt.Errorf("%w: max rank %d", ErrInvalidDeck, e.rules.MaxRank)
	}
	if maxRank > e.rules.MaxRank {
		return nil, fmt.Errorf("%w: rank %d above max rank %d", ErrInvalidDeck, maxRank, e.rules.MaxRank)
	}

	if e.sink == nil {
		e.sink = discardSink{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	e.log = opts.Logger.With(zap.String("session", e.ID.String()))
	return e, nil
}

// Deal lays out the tableau, turns the first remaining draw card into the target and
// stacks the draw pile.
func (e *Engine) Deal() error {
	if e.dealt {
		return ErrAlreadyDealt
	}
	if err := e.dealTableau(); err != nil {
		e.log.Warn("deal failed", zap.Error(err))
		return err
	}
	if !e.draw.Empty() {
		c, err := e.drawNext()
		if err != nil {
			return err
		}
		e.promoteNewTarget(c)
	}
	e.refreshDrawPile()
	e.dealt = true

	e.log.Info("dealt",
		zap.String("layout", e.layout.Name),
		zap.Int("tableau", e.tableau.Size()),
		zap.Int("draw", e.draw.Size()),
		zap.Stringer("target", e.target),
	)
	e.record(telemetry.EventDealt, telemetry.EventMetadata{
		"layout":  e.layout.Name,
		"tableau": e.tableau.Size(),
		"draw":    e.draw.Size(),
	})
	return nil
}

// Activate applies the rules for a click on the given card. Expected no-ops return
// OutcomeNone with a nil error; errors are precondition violations and leave the game
// untouched.
func (e *Engine) Activate(id model.CardID) (ActivateResult, error) {
	if !e.dealt {
		return ActivateResult{Outcome: OutcomeNone}, ErrNotDealt
	}
	c, ok := e.cards[id]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownCard, id)
		e.log.Warn("activate rejected", zap.String("card", string(id)), zap.Error(err))
		return ActivateResult{Outcome: OutcomeNone}, err
	}

	before := e.foundation.Size()
	var (
		out Outcome
		err error
	)
	switch {
	case c == e.target:
		out, err = e.activateTarget(c)
	case c.Pile == model.PileDraw:
		out, err = e.activateDraw()
	case c.Pile == model.PileTableau:
		out, err = e.activateTableau(c)
	default:
		out = OutcomeNone
	}
	if err != nil {
		e.log.Warn("activate rejected", zap.String("card", string(id)), zap.Error(err))
		return ActivateResult{Outcome: OutcomeNone}, err
	}

	res := ActivateResult{Outcome: out}
	if out != OutcomeNone {
		if err := e.RefreshFaceUps(); err != nil {
			return res, err
		}
		for _, r := range e.foundation.Cards[before:] {
			res.Retired = append(res.Retired, r.ID)
		}
		if len(res.Retired) > 0 {
			e.recordRetired(out, c, res.Retired)
		}
		if e.Won() {
			res.Won = true
			e.log.Info("won", zap.Int("foundation", e.foundation.Size()))
			e.record(telemetry.EventWon, telemetry.EventMetadata{"foundation": e.foundation.Size()})
		}
	}
	if e.target != nil {
		res.Target = e.target.ID
	}

	e.log.Debug("activate",
		zap.String("card", string(id)),
		zap.String("outcome", string(out)),
		zap.Int("draw", e.draw.Size()),
		zap.Int("waste", e.waste.Size()),
		zap.Int("tableau", e.tableau.Size()),
		zap.Int("foundation", e.foundation.Size()),
	)
	return res, nil
}

func (e *Engine) activateTarget(t *model.Card) (Outcome, error) {
	if t.Rank == e.rules.MaxRank {
		if err := e.retireTarget(); err != nil {
			return OutcomeNone, err
		}
		return OutcomeKingRetired, nil
	}
	if e.draw.Empty() && e.waste.Size() > 1 {
		n := e.recycleWasteToDraw()
		c, err := e.drawNext()
		if err != nil {
			return OutcomeNone, err
		}
		e.promoteNewTarget(c)
		e.refreshDrawPile()
		e.record(telemetry.EventRecycled, telemetry.EventMetadata{"cards": n, "target": string(c.ID)})
		return OutcomeRecycled, nil
	}
	return OutcomeNone, nil
}

func (e *Engine) activateDraw() (Outcome, error) {
	if e.draw.Empty() {
		return OutcomeNone, ErrDrawPileEmpty
	}
	e.clearSelection()
	c, err := e.drawNext()
	if err != nil {
		return OutcomeNone, err
	}
	e.promoteNewTarget(c)
	e.refreshDrawPile()
	e.record(telemetry.EventDrew, telemetry.EventMetadata{"card": string(c.ID), "draw": e.draw.Size()})
	return OutcomeDrew, nil
}

func (e *Engine) activateTableau(c *model.Card) (Outcome, error) {
	if e.rules.RequireFaceUp && !c.FaceUp {
		return OutcomeNone, nil
	}

	// Kings go straight to the foundation, whatever is selected.
	if c.Rank == e.rules.MaxRank {
		e.clearSelection()
		e.tableau.Remove(c)
		e.sendToFoundation(c)
		return OutcomeKingRetired, nil
	}

	sel := e.selected
	switch {
	case sel == nil && e.matchesTarget(c):
		return OutcomePairRetired, e.pairedMove(c, e.target)
	case sel == nil:
		e.selectCard(c)
		return OutcomeSelected, nil
	case sel != c && sel.Rank+c.Rank == e.rules.MaxRank:
		return OutcomePairRetired, e.pairedMove(c, sel)
	case e.matchesTarget(c):
		return OutcomePairRetired, e.pairedMove(c, e.target)
	case sel == c:
		return OutcomeNone, nil
	default:
		e.selectCard(c)
		return OutcomeSelected, nil
	}
}

func (e *Engine) matchesTarget(c *model.Card) bool {
	return e.target != nil && c.Rank+e.target.Rank == e.rules.MaxRank
}

// pairedMove retires a and b to the foundation. At most one of them is the target;
// it always goes last so the result does not depend on argument order.
func (e *Engine) pairedMove(a, b *model.Card) error {
	e.clearSelection()
	switch {
	case b == e.target:
		e.sendToFoundation(a)
		return e.retireTarget()
	case a == e.target:
		e.sendToFoundation(b)
		return e.retireTarget()
	}
	if b.SlotID < a.SlotID {
		a, b = b, a
	}
	e.sendToFoundation(a)
	e.sendToFoundation(b)
	return nil
}

func (e *Engine) selectCard(c *model.Card) {
	e.clearSelection()
	e.selected = c
	c.Highlighted = true
	e.emitHighlight(c)
	e.record(telemetry.EventSelected, telemetry.EventMetadata{"card": string(c.ID)})
}

func (e *Engine) clearSelection() {
	if e.selected == nil {
		return
	}
	e.selected.Highlighted = false
	e.emitHighlight(e.selected)
	e.selected = nil
}

func (e *Engine) recordRetired(out Outcome, c *model.Card, retired []model.CardID) {
	ids := make([]string, len(retired))
	for i, id := range retired {
		ids[i] = string(id)
	}
	meta := telemetry.EventMetadata{"card": string(c.ID), "cards": ids, "retired": len(retired)}
	switch out {
	case OutcomeKingRetired:
		e.record(telemetry.EventKingRetired, meta)
	case OutcomePairRetired:
		e.record(telemetry.EventPairRetired, meta)
	}
}

func (e *Engine) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if e.events == nil {
		return
	}
	if err := e.events.RecordEvent(e.ID.String(), t, meta); err != nil {
		e.log.Warn("record event", zap.String("type", string(t)), zap.Error(err))
	}
}
