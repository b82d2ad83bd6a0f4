package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_FiltersByTimeAndType(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	repo := NewMemoryRepository(clock)

	require.NoError(t, repo.RecordEvent("s1", EventDealt, EventMetadata{"slots": 9}))
	clock.Advance(time.Minute)
	require.NoError(t, repo.RecordEvent("s1", EventDrew, EventMetadata{"card": "S05"}))
	clock.Advance(time.Minute)
	require.NoError(t, repo.RecordEvent("s1", EventPairRetired, EventMetadata{"retired": 2}))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, "s1", all[0].Session)
	assert.Equal(t, start, all[0].Timestamp)
	assert.JSONEq(t, `{"slots": 9}`, all[0].Metadata)

	recent, err := repo.GetEvents(start.Add(time.Minute), nil)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	draws, err := repo.GetEvents(time.Time{}, []EventType{EventDrew})
	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.Equal(t, EventDrew, draws[0].Type)

	require.NoError(t, repo.Clear())
	all, err = repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository(nil)
	require.NoError(t, repo.RecordEvent("a", EventDrew, EventMetadata{}))
	require.NoError(t, repo.RecordEvent("a", EventDrew, EventMetadata{}))
	require.NoError(t, repo.RecordEvent("a", EventSelected, EventMetadata{"card": "H04"}))
	require.NoError(t, repo.RecordEvent("a", EventPairRetired, EventMetadata{"retired": 2}))
	require.NoError(t, repo.RecordEvent("a", EventKingRetired, EventMetadata{"retired": 1}))
	require.NoError(t, repo.RecordEvent("a", EventRecycled, EventMetadata{"cards": 12}))
	require.NoError(t, repo.RecordEvent("b", EventDrew, EventMetadata{}))

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Draws)
	assert.Equal(t, 1, stats.Selections)
	assert.Equal(t, 1, stats.PairsRetired)
	assert.Equal(t, 1, stats.KingsRetired)
	assert.Equal(t, 1, stats.Recycles)
	assert.Equal(t, 3, stats.FoundationCards)
	assert.False(t, stats.Won)
	assert.Equal(t, 2, stats.EventCounts[EventDrew])

	all, err := CalculateStats(events, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Draws)
}
