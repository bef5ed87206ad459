package score

import (
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/tile"
)

type blockType uint8

const (
	blockTriplet blockType = iota
	blockRun
	blockPair
	blockKan
)

// block is one group in a winning-hand decomposition.
type block struct {
	typ  blockType
	min  tile.Tile
	open bool
}

// decompositions enumerates every way to arrange the free tiles as a pair
// plus runs and triplets. Melds are appended by the caller.
func decompositions(counts *[tile.NumKinds]int) [][]block {
	var out [][]block
	for k := 0; k < tile.NumKinds; k++ {
		if counts[k] < 2 {
			continue
		}
		counts[k] -= 2
		prefix := []block{{typ: blockPair, min: tile.Tile(k)}}
		extractSets(counts, 0, prefix, &out)
		counts[k] += 2
	}
	return out
}

func extractSets(counts *[tile.NumKinds]int, idx int, acc []block, out *[][]block) {
	for idx < tile.NumKinds && counts[idx] == 0 {
		idx++
	}
	if idx == tile.NumKinds {
		blocks := make([]block, len(acc))
		copy(blocks, acc)
		*out = append(*out, blocks)
		return
	}
	t := tile.Tile(idx)
	if counts[idx] >= 3 {
		counts[idx] -= 3
		extractSets(counts, idx, append(acc, block{typ: blockTriplet, min: t}), out)
		counts[idx] += 3
	}
	if t.IsSuit() && t.Number() <= 7 && counts[idx+1] > 0 && counts[idx+2] > 0 {
		counts[idx]--
		counts[idx+1]--
		counts[idx+2]--
		extractSets(counts, idx, append(acc, block{typ: blockRun, min: t}), out)
		counts[idx]++
		counts[idx+1]++
		counts[idx+2]++
	}
}

func meldToBlock(m hand.Meld) block {
	min := m.Tiles[0].Normalize()
	for _, t := range m.Tiles[1:] {
		if n := t.Normalize(); n < min {
			min = n
		}
	}
	b := block{min: min, open: m.Open()}
	switch m.Type {
	case hand.MeldChi:
		b.typ = blockRun
	case hand.MeldPon:
		b.typ = blockTriplet
	case hand.MeldAnkan, hand.MeldMinkan:
		b.typ = blockKan
	}
	return b
}

func (c *Calculator) isYakuhai(t tile.Tile) bool {
	return t >= tile.Haku || t == c.Bakaze || t == c.Zikaze
}

// waitFu returns the 2-fu wait bonus for the worst interpretation of how
// winTile completes the decomposition, along with whether a two-sided run
// wait exists (needed for pinfu).
func waitFu(blocks []block, winTile tile.Tile) (int, bool) {
	w := winTile.Normalize()
	ryanmen := false
	closedWait := false
	for _, b := range blocks {
		if b.open {
			continue
		}
		switch b.typ {
		case blockPair:
			if b.min == w {
				closedWait = true // tanki
			}
		case blockRun:
			if !w.IsSuit() {
				continue
			}
			n := w.Number()
			switch {
			case b.min == w && n <= 6, b.min+2 == w && n >= 4:
				ryanmen = true
			case b.min+1 == w:
				closedWait = true // kanchan
			case b.min == w || b.min+2 == w:
				closedWait = true // penchan (123 waiting 3, 789 waiting 7)
			}
		}
	}
	if ryanmen {
		return 0, true
	}
	if closedWait {
		return 2, false
	}
	return 0, false
}

// yakuForBlocks evaluates the yaku of one decomposition. It returns the
// list of satisfied yaku (dora excluded) and the fu of this arrangement.
func (c *Calculator) yakuForBlocks(h *hand.Hand, blocks []block, winTile tile.Tile, flags WinFlag) ([]Yaku, int) {
	menzen := h.IsMenzen()
	tsumo := flags&FlagTsumo != 0

	var yaku []Yaku
	addYaku := func(name string, han int) {
		yaku = append(yaku, Yaku{Name: name, Han: han})
	}

	if flags&FlagRiichi != 0 && menzen {
		addYaku("riichi", 1)
	}
	if tsumo && menzen {
		addYaku("menzen tsumo", 1)
	}

	// Block census.
	var (
		runs, triplets, closedTriplets int
		pairTile                       tile.Tile
		runMins                        = map[tile.Tile]int{}
		dragonTriplets                 int
	)
	for _, b := range blocks {
		switch b.typ {
		case blockRun:
			runs++
			runMins[b.min]++
		case blockTriplet, blockKan:
			triplets++
			if !b.open {
				closedTriplets++
			}
			if b.min >= tile.Haku {
				dragonTriplets++
			}
			if c.isYakuhai(b.min) {
				if b.min >= tile.Haku {
					addYaku("yakuhai "+b.min.String(), 1)
				} else {
					addYaku("wind "+b.min.String(), 1)
				}
			}
		case blockPair:
			pairTile = b.min
		}
	}

	wait2fu, ryanmen := waitFu(blocks, winTile)

	// Pinfu: concealed, all runs, non-yakuhai pair, two-sided wait.
	pinfu := menzen && runs == 4 && !c.isYakuhai(pairTile) && ryanmen
	if pinfu {
		addYaku("pinfu", 1)
	}
	if menzen {
		ipeiko := 0
		for _, n := range runMins {
			if n >= 2 {
				ipeiko++
			}
		}
		if ipeiko >= 2 {
			addYaku("ryanpeiko", 3)
		} else if ipeiko == 1 {
			addYaku("iipeiko", 1)
		}
	}

	// Tanyao: no terminals or honors anywhere.
	tanyao := true
	for _, b := range blocks {
		switch b.typ {
		case blockRun:
			if b.min.Number() == 1 || b.min.Number() == 7 {
				tanyao = false
			}
		default:
			if b.min.IsYaochu() {
				tanyao = false
			}
		}
	}
	if tanyao {
		addYaku("tanyao", 1)
	}

	if triplets == 4 {
		addYaku("toitoi", 2)
	}
	if closedTriplets == 3 {
		addYaku("sanankou", 2)
	}
	if dragonTriplets == 3 {
		addYaku("daisangen", 13)
	}
	if closedTriplets == 4 && menzen && tsumo {
		addYaku("suuankou", 13)
	}

	// Flushes.
	suit := -1
	honors := false
	pureSuit := true
	for _, b := range blocks {
		if b.min.IsHonor() {
			honors = true
			continue
		}
		if suit == -1 {
			suit = b.min.Suit()
		} else if suit != b.min.Suit() {
			pureSuit = false
		}
	}
	if pureSuit && suit != -1 {
		if honors {
			han := 3
			if !menzen {
				han = 2
			}
			addYaku("honitsu", han)
		} else {
			han := 6
			if !menzen {
				han = 5
			}
			addYaku("chinitsu", han)
		}
	}

	// Fu.
	fu := 20
	if pinfu && tsumo {
		fu = 20
	} else {
		if tsumo {
			fu += 2
		} else if menzen {
			fu += 10
		}
		fu += wait2fu
		if c.isYakuhai(pairTile) {
			fu += 2
		}
		for _, b := range blocks {
			f := 0
			switch b.typ {
			case blockTriplet:
				f = 4
			case blockKan:
				f = 16
			default:
				continue
			}
			if b.open {
				f /= 2
			}
			if b.min.IsYaochu() {
				f *= 2
			}
			fu += f
		}
		fu = (fu + 9) / 10 * 10
	}
	return yaku, fu
}
