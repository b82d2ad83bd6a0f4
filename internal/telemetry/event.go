package telemetry

import "time"

type EventType string

const (
	EventDealt       EventType = "dealt"
	EventDrew        EventType = "drew"
	EventRecycled    EventType = "recycled"
	EventSelected    EventType = "selected"
	EventKingRetired EventType = "king_retired"
	EventPairRetired EventType = "pair_retired"
	EventWon         EventType = "won"
)

type Event struct {
	ID        int       `json:"id"`
	Session   string    `json:"session"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
