// Package hand holds the machine-friendly hand representation used by the
// search engine: a 34-slot count array for the free tiles, red-five flags,
// and an ordered list of melds.
package hand

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mikansei/ukeire/tile"
)

// Hand is a player's hand. The count array covers the free (unmelded)
// tiles by base kind; red fives are tracked as side flags and included in
// their base kind's count. Melds are kept in call order.
type Hand struct {
	counts [tile.NumKinds]int

	// AkaManzu5 etc. mark that the red copy of the suit's five is among
	// the free tiles.
	AkaManzu5 bool
	AkaPinzu5 bool
	AkaSozu5  bool

	melds []Meld
}

// New builds a hand from free tiles and melds. Red fives in the tiles list
// set the corresponding flag and count toward their base kind.
func New(tiles []tile.Tile, melds ...Meld) *Hand {
	h := &Hand{}
	for _, t := range tiles {
		h.Add(t)
	}
	h.melds = append(h.melds, melds...)
	return h
}

// FromString parses a grouped tile string ("222567m345p33667s") into a hand
// with no melds. A 0 rank denotes the suit's red five.
func FromString(s string) (*Hand, error) {
	tiles, err := tile.ParseMany(s)
	if err != nil {
		return nil, err
	}
	return New(tiles), nil
}

// MustFromString is FromString for tests and fixed fixtures.
func MustFromString(s string) *Hand {
	h, err := FromString(s)
	if err != nil {
		log.Fatal().Err(err).Str("hand", s).Msg("unparseable hand")
	}
	return h
}

// Count returns the number of free tiles of the given base kind. Red fives
// count under their base kind.
func (h *Hand) Count(t tile.Tile) int {
	return h.counts[t.Normalize()]
}

// Contains reports whether at least one free tile of the base kind is held.
func (h *Hand) Contains(t tile.Tile) bool {
	return h.counts[t.Normalize()] > 0
}

// NumTiles returns the number of free tiles (melds excluded).
func (h *Hand) NumTiles() int {
	n := 0
	for _, c := range h.counts {
		n += c
	}
	return n
}

// Add puts one tile into the free tiles. Adding a red five also raises its
// flag.
func (h *Hand) Add(t tile.Tile) {
	h.counts[t.Normalize()]++
	switch t {
	case tile.AkaManzu5:
		h.AkaManzu5 = true
	case tile.AkaPinzu5:
		h.AkaPinzu5 = true
	case tile.AkaSozu5:
		h.AkaSozu5 = true
	}
}

// Remove takes one tile out of the free tiles. Removing a red five clears
// its flag.
func (h *Hand) Remove(t tile.Tile) {
	h.counts[t.Normalize()]--
	switch t {
	case tile.AkaManzu5:
		h.AkaManzu5 = false
	case tile.AkaPinzu5:
		h.AkaPinzu5 = false
	case tile.AkaSozu5:
		h.AkaSozu5 = false
	}
}

// Counts returns a copy of the 34-slot free-tile count array.
func (h *Hand) Counts() [tile.NumKinds]int {
	return h.counts
}

// Melds returns the meld list. Callers must not mutate it.
func (h *Hand) Melds() []Meld {
	return h.melds
}

// AddMeld appends a meld.
func (h *Hand) AddMeld(m Meld) {
	h.melds = append(h.melds, m)
}

// IsMenzen reports whether the hand is concealed. A closed kan keeps the
// hand concealed.
func (h *Hand) IsMenzen() bool {
	for _, m := range h.melds {
		if m.Open() {
			return false
		}
	}
	return true
}

// HasAka reports whether the hand's free tiles include the given red five.
func (h *Hand) HasAka(aka tile.Tile) bool {
	switch aka {
	case tile.AkaManzu5:
		return h.AkaManzu5
	case tile.AkaPinzu5:
		return h.AkaPinzu5
	case tile.AkaSozu5:
		return h.AkaSozu5
	}
	return false
}

// NumAka counts red fives across free tiles and melds.
func (h *Hand) NumAka() int {
	n := 0
	for _, aka := range []tile.Tile{tile.AkaManzu5, tile.AkaPinzu5, tile.AkaSozu5} {
		if h.HasAka(aka) {
			n++
		}
		for _, m := range h.melds {
			if m.ContainsAka(aka) {
				n++
			}
		}
	}
	return n
}

// Copy returns a deep copy of the hand.
func (h *Hand) Copy() *Hand {
	n := &Hand{
		counts:    h.counts,
		AkaManzu5: h.AkaManzu5,
		AkaPinzu5: h.AkaPinzu5,
		AkaSozu5:  h.AkaSozu5,
	}
	n.melds = append(n.melds, h.melds...)
	return n
}

// Tiles returns the free tiles in kind order, red fives reported as their
// red variant.
func (h *Hand) Tiles() []tile.Tile {
	var tiles []tile.Tile
	for k := 0; k < tile.NumKinds; k++ {
		t := tile.Tile(k)
		n := h.counts[k]
		if aka := tile.AkaOf(t); aka != tile.Null && h.HasAka(aka) && n > 0 {
			tiles = append(tiles, aka)
			n--
		}
		for i := 0; i < n; i++ {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// String renders the free tiles followed by melds.
func (h *Hand) String() string {
	s := tile.FormatMany(h.Tiles())
	for _, m := range h.melds {
		s += fmt.Sprintf(" [%s]", m)
	}
	return s
}
