package telemetry

import (
	"encoding/json"
)

type Stats struct {
	Session         string            `json:"session,omitempty"`
	EventCounts     map[EventType]int `json:"event_counts"`
	Draws           int               `json:"draws"`
	Recycles        int               `json:"recycles"`
	Selections      int               `json:"selections"`
	KingsRetired    int               `json:"kings_retired"`
	PairsRetired    int               `json:"pairs_retired"`
	FoundationCards int               `json:"foundation_cards"`
	Won             bool              `json:"won"`
}

// CalculateStats summarizes the events of one session. An empty session counts every event.
func CalculateStats(events []Event, session string) (Stats, error) {
	stats := Stats{
		Session:     session,
		EventCounts: make(map[EventType]int),
	}

	for _, event := range events {
		if session != "" && event.Session != session {
			continue
		}
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventDrew:
			stats.Draws++
		case EventRecycled:
			stats.Recycles++
		case EventSelected:
			stats.Selections++
		case EventKingRetired:
			stats.KingsRetired++
		case EventPairRetired:
			stats.PairsRetired++
		case EventWon:
			stats.Won = true
		}

		// JSON numbers decode as float64
		if n, ok := metadata["retired"].(float64); ok {
			stats.FoundationCards += int(n)
		}
	}

	return stats, nil
}
