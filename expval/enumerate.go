package expval

import (
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/shanten"
	"github.com/mikansei/ukeire/tile"
)

// drawCandidate is a tile that could be drawn: its kind, the copies left in
// the wall for this event, and the shanten change it would cause.
type drawCandidate struct {
	t     tile.Tile
	count int
	diff  int
}

// discardCandidate is a tile the hand could discard and the shanten change.
type discardCandidate struct {
	t    tile.Tile
	diff int
}

// addTile puts t into the hand. The red-five flag follows the tile.
func addTile(h *hand.Hand, t tile.Tile) {
	h.Add(t)
}

// removeTile is the inverse of addTile.
func removeTile(h *hand.Hand, t tile.Tile) {
	h.Remove(t)
}

// addTileDrawn moves t from the wall into the hand. Drawing a red five
// consumes both its base-kind slot and its red slot.
func addTileDrawn(h *hand.Hand, t tile.Tile, counts []int) {
	h.Add(t)
	counts[t.Normalize()]--
	if t.IsAka() {
		counts[t]--
	}
}

// removeTileDrawn is the inverse of addTileDrawn.
func removeTileDrawn(h *hand.Hand, t tile.Tile, counts []int) {
	h.Remove(t)
	counts[t.Normalize()]++
	if t.IsAka() {
		counts[t]++
	}
}

// drawTiles lists the draw candidates for the hand: every base kind with
// copies left, with the shanten change from drawing it. With red-five
// accounting on, a five whose red copy is still live splits into a plain
// event and a red event; the plain event disappears when only the red copy
// remains.
func (c *Calculator) drawTiles(h *hand.Hand, syanten int, counts []int) []drawCandidate {
	cands := make([]drawCandidate, 0, tile.NumKinds)
	for k := 0; k < tile.NumKinds; k++ {
		if counts[k] == 0 {
			continue
		}
		t := tile.Tile(k)
		addTile(h, t)
		_, after := shanten.Calc(h, c.syantenType)
		removeTile(h, t)
		diff := after - syanten

		aka := tile.AkaOf(t)
		if c.calcAkaTumo && aka != tile.Null && counts[aka] == 1 {
			if counts[k] >= 2 {
				cands = append(cands,
					drawCandidate{t: t, count: counts[k] - 1, diff: diff},
					drawCandidate{t: aka, count: 1, diff: diff})
			} else {
				cands = append(cands, drawCandidate{t: aka, count: 1, diff: diff})
			}
		} else {
			cands = append(cands, drawCandidate{t: t, count: counts[k], diff: diff})
		}
	}
	return cands
}

// discardTiles lists the discard candidates: every base kind in the hand
// with the shanten change from discarding it. A five held together with its
// red variant is reported as the plain five while a plain copy exists;
// when the red copy is the only five, the red is reported.
func (c *Calculator) discardTiles(h *hand.Hand, syanten int) []discardCandidate {
	cands := make([]discardCandidate, 0, h.NumTiles())
	for k := 0; k < tile.NumKinds; k++ {
		t := tile.Tile(k)
		if !h.Contains(t) {
			continue
		}
		removeTile(h, t)
		_, after := shanten.Calc(h, c.syantenType)
		addTile(h, t)

		discard := t
		if aka := tile.AkaOf(t); aka != tile.Null && h.HasAka(aka) && h.Count(t) == 1 {
			discard = aka
		}
		cands = append(cands, discardCandidate{t: discard, diff: after - syanten})
	}
	return cands
}

// RequiredTiles lists the tiles that advance the hand toward tenpai, with
// the number of copies left in counts.
func RequiredTiles(h *hand.Hand, typ shanten.Type, counts []int) []RequiredTile {
	work := h.Copy()
	_, current := shanten.Calc(work, typ)

	var required []RequiredTile
	for k := 0; k < tile.NumKinds; k++ {
		if counts[k] == 0 {
			continue
		}
		t := tile.Tile(k)
		work.Add(t)
		_, after := shanten.Calc(work, typ)
		work.Remove(t)
		if after-current == -1 {
			required = append(required, RequiredTile{Tile: t, Count: counts[k]})
		}
	}
	return required
}
