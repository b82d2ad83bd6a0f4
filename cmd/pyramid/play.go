package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"pyramid/internal/config"
	"pyramid/internal/deck"
	"pyramid/internal/game"
	"pyramid/internal/layout"
	"pyramid/internal/model"
	"pyramid/internal/telemetry"
)

type session struct {
	e      *game.Engine
	events *telemetry.MemoryRepository
	seed   int64
	out    io.Writer
}

func newSession(cfg *config.Config, logger *zap.Logger, out io.Writer) (*session, error) {
	l, err := layout.Resolve(cfg.Layout)
	if err != nil {
		return nil, err
	}
	d, err := deck.Build(model.Rank(cfg.Deck.MaxRank), cfg.Deck.Suits)
	if err != nil {
		return nil, err
	}
	seed := d.Shuffle(cfg.Seed)

	events := telemetry.NewMemoryRepository(telemetry.RealClock{})
	sink := game.SinkFunc(func(u game.Update) {
		logger.Debug("update",
			zap.String("card", string(u.Card)),
			zap.String("kind", string(u.Kind)),
			zap.String("layer", u.Layer),
			zap.Bool("face_up", u.FaceUp),
			zap.Bool("highlighted", u.Highlighted),
		)
	})
	e, err := game.New(l, d.Cards, game.Options{
		Rules: game.Rules{
			MaxRank:       model.Rank(cfg.Deck.MaxRank),
			RequireFaceUp: cfg.Rules.RequireFaceUp,
		},
		Sink:   sink,
		Logger: logger,
		Events: events,
	})
	if err != nil {
		return nil, err
	}
	if err := e.Deal(); err != nil {
		return nil, err
	}
	return &session{e: e, events: events, seed: seed, out: out}, nil
}

// play reads one command per line from in until quit or EOF.
func play(in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	s, err := newSession(cfg, logger, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "session %s layout %s seed %d\n", s.e.ID, s.e.Layout().Name, s.seed)
	s.show()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "quit", "q":
			return s.stats()
		case "show", "s":
			s.show()
		case "stats":
			if err := s.stats(); err != nil {
				return err
			}
		case "draw", "d":
			draw := s.e.Snapshot().Draw
			if len(draw) == 0 {
				fmt.Fprintln(out, "draw pile is empty")
				continue
			}
			s.activate(draw[0])
		case "target", "t":
			if s.e.Target() == nil {
				fmt.Fprintln(out, "no target")
				continue
			}
			s.activate(s.e.Target().ID)
		case "click", "c":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: click <card>")
				continue
			}
			s.activate(model.CardID(strings.ToUpper(fields[1])))
		default:
			fmt.Fprintln(out, "commands: draw, target, click <card>, show, stats, quit")
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return s.stats()
}

func (s *session) activate(id model.CardID) {
	res, err := s.e.Activate(id)
	if err != nil {
		if errors.Is(err, game.ErrUnknownCard) {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		fmt.Fprintf(s.out, "rejected: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s %s", id, res.Outcome)
	if len(res.Retired) > 0 {
		fmt.Fprintf(s.out, " retired=%v", res.Retired)
	}
	fmt.Fprintln(s.out)
	if res.Outcome != game.OutcomeNone {
		s.show()
	}
	if res.Won {
		fmt.Fprintln(s.out, "cleared the pyramid")
	}
}

// show prints the tableau one depth group per line: face-up cards by id, face-down
// cards as ##, vacated slots as ..
func (s *session) show() {
	l := s.e.Layout()
	var line []string
	layer := ""
	flush := func() {
		if len(line) > 0 {
			fmt.Fprintf(s.out, "%-8s %s\n", layer, strings.Join(line, " "))
		}
		line = line[:0]
	}
	for _, slot := range l.Slots {
		if slot.Layer != layer {
			flush()
			layer = slot.Layer
		}
		c := s.e.SlotCard(slot.ID)
		switch {
		case c == nil || c.Pile != model.PileTableau:
			line = append(line, "..")
		case !c.FaceUp:
			line = append(line, "##")
		default:
			line = append(line, string(c.ID))
		}
	}
	flush()

	target, selected := "-", "-"
	if t := s.e.Target(); t != nil {
		target = string(t.ID)
	}
	if sel := s.e.Selected(); sel != nil {
		selected = string(sel.ID)
	}
	fmt.Fprintf(s.out, "target %s  selected %s  draw %d  waste %d  foundation %d\n",
		target, selected,
		s.e.Size(model.PileDraw), s.e.Size(model.PileWaste), s.e.Size(model.PileFoundation))
}

func (s *session) stats() error {
	events, err := s.events.GetEvents(time.Time{}, nil)
	if err != nil {
		return err
	}
	st, err := telemetry.CalculateStats(events, s.e.ID.String())
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "draws %d  recycles %d  pairs %d  kings %d  foundation %d  won %t\n",
		st.Draws, st.Recycles, st.PairsRetired, st.KingsRetired, st.FoundationCards, st.Won)
	return nil
}
