// Package shanten computes the distance of a hand from tenpai. A shanten
// number of 0 means the hand is ready; -1 means it is already complete.
package shanten

import (
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/tile"
)

// Type selects which hand shapes the calculation considers. Values are bit
// flags so callers can ask for the minimum over a union of shapes.
type Type int

const (
	TypeNormal Type = 1 << iota
	TypeTiitoi
	TypeKokusi

	// TypeUnion considers all three shapes.
	TypeUnion = TypeNormal | TypeTiitoi | TypeKokusi
)

// Calc returns the shanten number of the hand under the requested type(s),
// along with the type that attained the minimum. Seven-pairs and
// thirteen-orphans shapes only apply to hands without melds.
func Calc(h *hand.Hand, typ Type) (Type, int) {
	if typ == 0 {
		typ = TypeNormal
	}
	best := 9
	bestType := TypeNormal
	counts := h.Counts()
	nMelds := len(h.Melds())
	if nMelds > 0 {
		// Only the normal shape applies to a hand with melds.
		typ |= TypeNormal
	}
	if typ&TypeNormal != 0 {
		if s := calcNormal(&counts, nMelds); s < best {
			best, bestType = s, TypeNormal
		}
	}
	if typ&TypeTiitoi != 0 && nMelds == 0 {
		if s := calcTiitoi(&counts); s < best {
			best, bestType = s, TypeTiitoi
		}
	}
	if typ&TypeKokusi != 0 && nMelds == 0 {
		if s := calcKokusi(&counts); s < best {
			best, bestType = s, TypeKokusi
		}
	}
	return bestType, best
}

// calcTiitoi: seven pairs. 6 - pairs, plus a penalty when there are fewer
// than seven distinct kinds (a third or fourth copy never helps).
func calcTiitoi(counts *[tile.NumKinds]int) int {
	pairs, kinds := 0, 0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		kinds++
		if c >= 2 {
			pairs++
		}
	}
	s := 6 - pairs
	if kinds < 7 {
		s += 7 - kinds
	}
	return s
}

// calcKokusi: thirteen orphans.
func calcKokusi(counts *[tile.NumKinds]int) int {
	kinds, pair := 0, 0
	for k := 0; k < tile.NumKinds; k++ {
		if !tile.Tile(k).IsYaochu() {
			continue
		}
		if counts[k] > 0 {
			kinds++
		}
		if counts[k] >= 2 {
			pair = 1
		}
	}
	return 13 - kinds - pair
}

// calcNormal: the standard four-sets-and-a-pair shape. Exhaustively
// decomposes the count array into sets, partial sets and a pair, with
// melds counting as completed sets, and evaluates
// 8 - 2*(melds+sets) - partials - pair at every terminal decomposition.
func calcNormal(counts *[tile.NumKinds]int, nMelds int) int {
	st := &normalSearch{counts: counts, nMelds: nMelds, best: 8}
	st.walk(0, 0, 0, false)
	return st.best
}

type normalSearch struct {
	counts *[tile.NumKinds]int
	nMelds int
	best   int
}

func (s *normalSearch) leaf(sets, partials int, hasPair bool) {
	blocks := s.nMelds + sets
	if blocks+partials > 4 {
		partials = 4 - blocks
	}
	sh := 8 - 2*blocks - partials
	if hasPair {
		sh--
	}
	if sh < s.best {
		s.best = sh
	}
}

func (s *normalSearch) walk(idx, sets, partials int, hasPair bool) {
	for idx < tile.NumKinds && s.counts[idx] == 0 {
		idx++
	}
	if idx == tile.NumKinds {
		s.leaf(sets, partials, hasPair)
		return
	}
	c := s.counts
	t := tile.Tile(idx)
	canRun := t.IsSuit() && t.Number() <= 7 && c[idx+1] > 0 && c[idx+2] > 0
	canPartialRun := t.IsSuit() && t.Number() <= 8 && c[idx+1] > 0
	canGapRun := t.IsSuit() && t.Number() <= 7 && c[idx+2] > 0

	if s.nMelds+sets < 4 {
		if c[idx] >= 3 {
			c[idx] -= 3
			s.walk(idx, sets+1, partials, hasPair)
			c[idx] += 3
		}
		if canRun {
			c[idx]--
			c[idx+1]--
			c[idx+2]--
			s.walk(idx, sets+1, partials, hasPair)
			c[idx]++
			c[idx+1]++
			c[idx+2]++
		}
	}
	if c[idx] >= 2 {
		c[idx] -= 2
		if !hasPair {
			s.walk(idx, sets, partials, true)
		}
		if s.nMelds+sets+partials < 4 {
			s.walk(idx, sets, partials+1, hasPair)
		}
		c[idx] += 2
	}
	if s.nMelds+sets+partials < 4 {
		if canPartialRun {
			c[idx]--
			c[idx+1]--
			s.walk(idx, sets, partials+1, hasPair)
			c[idx]++
			c[idx+1]++
		}
		if canGapRun {
			c[idx]--
			c[idx+2]--
			s.walk(idx, sets, partials+1, hasPair)
			c[idx]++
			c[idx+2]++
		}
	}
	// Leave one copy of this kind unused.
	c[idx]--
	s.walk(idx, sets, partials, hasPair)
	c[idx]++
}
