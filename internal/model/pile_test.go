package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPile_Ordering(t *testing.T) {
	p := NewPile(PileWaste)
	a, b, c := NewCard(1, 'S'), NewCard(2, 'S'), NewCard(3, 'S')

	assert.True(t, p.Empty())
	assert.Nil(t, p.Top())
	assert.Nil(t, p.TakeFront())
	assert.Nil(t, p.TakeTop())

	p.Append(a)
	p.Append(b)
	p.PushFront(c)

	assert.Equal(t, []CardID{"S03", "S01", "S02"}, p.IDs())
	assert.Equal(t, PileWaste, a.Pile)
	assert.Equal(t, PileWaste, c.Pile)
	assert.Same(t, b, p.Top())
	assert.Same(t, c, p.Front())

	assert.Same(t, c, p.TakeFront())
	assert.Same(t, b, p.TakeTop())
	assert.Equal(t, 1, p.Size())
}

func TestPile_Remove(t *testing.T) {
	p := NewPile(PileTableau)
	a, b := NewCard(4, 'H'), NewCard(5, 'H')
	p.Append(a)
	p.Append(b)

	require.True(t, p.Remove(a))
	assert.False(t, p.Contains(a))
	assert.False(t, p.Remove(a))
	assert.Equal(t, 0, p.IndexOf(b))
	assert.Equal(t, []CardID{"H05"}, p.IDs())
}

func TestCard(t *testing.T) {
	c := NewCard(King, 'D')
	assert.Equal(t, CardID("D13"), c.ID)
	assert.Equal(t, PileDraw, c.Pile)
	assert.False(t, c.FaceUp)
	assert.False(t, c.Dealt)

	c.BindSlot(7)
	assert.True(t, c.Dealt)
	assert.Equal(t, 7, c.SlotID)
	assert.Equal(t, "D13", c.String())

	var nilCard *Card
	assert.Equal(t, "<nil>", nilCard.String())
}
