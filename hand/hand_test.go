package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikansei/ukeire/tile"
)

func TestFromString(t *testing.T) {
	h, err := FromString("222567m345p33667s")
	assert.NoError(t, err)
	assert.Equal(t, 14, h.NumTiles())
	assert.Equal(t, 3, h.Count(tile.Manzu2))
	assert.Equal(t, 2, h.Count(tile.Sozu3))
	assert.True(t, h.Contains(tile.Pinzu4))
	assert.False(t, h.Contains(tile.Ton))
}

func TestAkaFlags(t *testing.T) {
	h := MustFromString("055m123p456s11122z")
	assert.Equal(t, 3, h.Count(tile.Manzu5))
	assert.True(t, h.AkaManzu5)
	assert.True(t, h.HasAka(tile.AkaManzu5))
	assert.Equal(t, 1, h.NumAka())

	h.Remove(tile.AkaManzu5)
	assert.Equal(t, 2, h.Count(tile.Manzu5))
	assert.False(t, h.AkaManzu5)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	h := MustFromString("123m456p789s1122z")
	before := h.Counts()
	h.Add(tile.Sya)
	h.Remove(tile.Sya)
	assert.Equal(t, before, h.Counts())
}

func TestMelds(t *testing.T) {
	tiles, err := tile.ParseMany("567m")
	assert.NoError(t, err)
	h := New(nil, Meld{Type: MeldChi, Tiles: tiles})
	assert.False(t, h.IsMenzen())
	assert.Equal(t, 0, h.NumTiles())
	assert.Len(t, h.Melds(), 1)

	closed := New(nil, Meld{Type: MeldAnkan, Tiles: []tile.Tile{tile.Ton, tile.Ton, tile.Ton, tile.Ton}})
	assert.True(t, closed.IsMenzen())
}

func TestCopyIsIndependent(t *testing.T) {
	h := MustFromString("123m456p789s1122z")
	cp := h.Copy()
	cp.Add(tile.Haku)
	assert.Equal(t, 0, h.Count(tile.Haku))
	assert.Equal(t, 1, cp.Count(tile.Haku))
}

func TestString(t *testing.T) {
	h := MustFromString("055m11z")
	assert.Equal(t, "055m11z", h.String())
}
