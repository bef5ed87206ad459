package expval

import (
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/tile"
)

// CountLeftTiles counts the copies of each tile kind not visible to the
// player: four of each base kind and one of each red five, minus the hand's
// free tiles, melded tiles, and dora indicators. The result has 37 entries;
// the first 34 are the base kinds.
func CountLeftTiles(h *hand.Hand, doraIndicators []tile.Tile) ([]int, error) {
	counts := make([]int, tile.NumKindsWithAka)
	for k := 0; k < tile.NumKinds; k++ {
		counts[k] = 4
	}
	counts[tile.AkaManzu5] = 1
	counts[tile.AkaPinzu5] = 1
	counts[tile.AkaSozu5] = 1

	handCounts := h.Counts()
	for k := 0; k < tile.NumKinds; k++ {
		counts[k] -= handCounts[k]
	}
	for _, aka := range []tile.Tile{tile.AkaManzu5, tile.AkaPinzu5, tile.AkaSozu5} {
		if h.HasAka(aka) {
			counts[aka]--
		}
	}

	for _, m := range h.Melds() {
		for _, t := range m.Tiles {
			counts[t.Normalize()]--
			if t.IsAka() {
				counts[t]--
			}
		}
	}

	for _, t := range doraIndicators {
		counts[t.Normalize()]--
		if t.IsAka() {
			counts[t]--
		}
	}

	for _, c := range counts {
		if c < 0 {
			return nil, ErrInvalidTileCount
		}
	}
	return counts, nil
}
