// Package score evaluates completed riichi hands: yaku detection, han and
// fu counting, and the point table. The search engine consumes it through
// Calc and ScoresForExp.
package score

import (
	"github.com/rs/zerolog/log"

	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/shanten"
	"github.com/mikansei/ukeire/tile"
)

// WinFlag describes the circumstances of the win.
type WinFlag int

const (
	// FlagTsumo marks a self-drawn win.
	FlagTsumo WinFlag = 1 << iota
	// FlagRiichi marks a declared riichi. Only meaningful for concealed
	// hands; the flag is ignored otherwise.
	FlagRiichi
)

// Yaku is one satisfied scoring pattern.
type Yaku struct {
	Name string
	Han  int
}

// Result is the outcome of scoring a completed hand. Success is false when
// the hand has no yaku (or is not a winning shape); such hands score zero
// but are not errors.
type Result struct {
	Success bool
	Han     int
	Fu      int
	Yaku    []Yaku
	// Points is the winner's total income for a non-dealer tsumo.
	Points int
}

// Calculator scores hands for a fixed seat context.
type Calculator struct {
	// Bakaze and Zikaze are the round and seat winds (Ton..Pe).
	Bakaze tile.Tile
	Zikaze tile.Tile
	// DoraIndicators are the visible indicator tiles.
	DoraIndicators []tile.Tile
	// CountAka enables red-five dora counting.
	CountAka bool
}

// NewCalculator returns a Calculator for an east-seat, east-round player
// with no dora indicators and red-five dora counting on.
func NewCalculator() *Calculator {
	return &Calculator{Bakaze: tile.Ton, Zikaze: tile.Ton, CountAka: true}
}

// Calc scores the hand. The hand must already contain the winning tile.
func (c *Calculator) Calc(h *hand.Hand, winTile tile.Tile, flags WinFlag) Result {
	counts := h.Counts()

	// Thirteen orphans first; like seven pairs below, it is concealed-only.
	if len(h.Melds()) == 0 {
		if s := kokusiResult(&counts, h); s.Success {
			return c.finish(h, s)
		}
	}

	var best Result
	var meldBlocks []block
	for _, m := range h.Melds() {
		meldBlocks = append(meldBlocks, meldToBlock(m))
	}
	for _, dec := range decompositions(&counts) {
		if len(dec)+len(meldBlocks) != 5 {
			continue
		}
		blocks := append(dec, meldBlocks...)
		yaku, fu := c.yakuForBlocks(h, blocks, winTile, flags)
		r := resultFromYaku(yaku, fu)
		if r.Han > best.Han || (r.Han == best.Han && r.Fu > best.Fu) {
			best = r
		}
	}

	if len(h.Melds()) == 0 {
		if _, s := shanten.Calc(h, shanten.TypeTiitoi); s == -1 {
			r := c.tiitoiResult(h, flags)
			if r.Han > best.Han {
				best = r
			}
		}
	}

	if !best.Success {
		log.Debug().Str("hand", h.String()).Msg("no yaku")
		return Result{}
	}
	return c.finish(h, best)
}

func resultFromYaku(yaku []Yaku, fu int) Result {
	han := 0
	for _, y := range yaku {
		han += y.Han
	}
	if han == 0 {
		return Result{}
	}
	return Result{Success: true, Han: han, Fu: fu, Yaku: yaku}
}

func (c *Calculator) tiitoiResult(h *hand.Hand, flags WinFlag) Result {
	yaku := []Yaku{{Name: "chiitoitsu", Han: 2}}
	if flags&FlagRiichi != 0 {
		yaku = append(yaku, Yaku{Name: "riichi", Han: 1})
	}
	if flags&FlagTsumo != 0 {
		yaku = append(yaku, Yaku{Name: "menzen tsumo", Han: 1})
	}
	return resultFromYaku(yaku, 25)
}

func kokusiResult(counts *[tile.NumKinds]int, h *hand.Hand) Result {
	pair := false
	for k := 0; k < tile.NumKinds; k++ {
		c := counts[k]
		if c == 0 {
			continue
		}
		if !tile.Tile(k).IsYaochu() || c > 2 {
			return Result{}
		}
		if c == 2 {
			if pair {
				return Result{}
			}
			pair = true
		}
	}
	if !pair || h.NumTiles() != 14 {
		return Result{}
	}
	return Result{Success: true, Han: 13, Fu: 30, Yaku: []Yaku{{Name: "kokushi musou", Han: 13}}}
}

// finish folds dora into the result and fills in the point total.
func (c *Calculator) finish(h *hand.Hand, r Result) Result {
	nDora := c.countDora(h)
	if nDora > 0 && r.Han < 13 {
		r.Yaku = append(r.Yaku, Yaku{Name: "dora", Han: nDora})
		r.Han += nDora
	}
	r.Points = totalPoints(r.Han, r.Fu)
	return r
}

func (c *Calculator) countDora(h *hand.Hand) int {
	n := 0
	for _, ind := range c.DoraIndicators {
		d := tile.DoraFor(ind)
		n += h.Count(d)
		for _, m := range h.Melds() {
			for _, t := range m.Tiles {
				if t.Normalize() == d {
					n++
				}
			}
		}
	}
	if c.CountAka {
		n += h.NumAka()
	}
	return n
}

// totalPoints is the winner's total income for a non-dealer tsumo at the
// given han and fu, limit hands included.
func totalPoints(han, fu int) int {
	var base int
	switch {
	case han >= 13:
		base = 8000
	case han >= 11:
		base = 6000
	case han >= 8:
		base = 4000
	case han >= 6:
		base = 3000
	case han >= 5:
		base = 2000
	default:
		base = fu << (2 + uint(han))
		if base > 2000 {
			base = 2000
		}
	}
	// Non-dealer tsumo: each non-dealer pays base, the dealer pays double,
	// all rounded up to the next hundred.
	return 2*roundUp100(base) + roundUp100(2*base)
}

func roundUp100(p int) int {
	return (p + 99) / 100 * 100
}

// ScoresForExp returns the winner's total income indexed by extra han on
// top of r.Han, up through the yakuman limit. The array is monotonic
// non-decreasing; callers clamp their index to the last entry.
func (c *Calculator) ScoresForExp(r Result) []int {
	if !r.Success {
		return []int{0}
	}
	last := 13 - r.Han
	if last < 0 {
		last = 0
	}
	scores := make([]int, last+1)
	for i := range scores {
		scores[i] = totalPoints(r.Han+i, r.Fu)
	}
	return scores
}
