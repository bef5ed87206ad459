package expval

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/mikansei/ukeire/tile"
)

// RequiredTile is a useful incoming tile and how many copies remain unseen.
type RequiredTile struct {
	Tile  tile.Tile
	Count int
}

// Candidate is the analysis of one discard choice (or of the single draw
// for a 13-tile hand, in which case Tile is tile.Null). The probability and
// value vectors are indexed by the current turn; they are empty for hands
// too far from tenpai (shanten >= 4).
type Candidate struct {
	Tile          tile.Tile
	RequiredTiles []RequiredTile
	TenpaiProbs   []float64
	WinProbs      []float64
	ExpValues     []float64
	SyantenDown   bool
}

// SumRequired is the total number of useful tiles left in the wall.
func (c *Candidate) SumRequired() int {
	return lo.SumBy(c.RequiredTiles, func(r RequiredTile) int { return r.Count })
}

func (c *Candidate) String() string {
	return fmt.Sprintf("<discard %v: %d kinds %d tiles, syanten_down=%v>",
		c.Tile, len(c.RequiredTiles), c.SumRequired(), c.SyantenDown)
}

// SortCandidates orders candidates best-first by their turn-0 expected
// value, or by turn-0 win probability when byWinProb is set. Candidates
// without vectors keep their enumeration order at the end.
func SortCandidates(cands []Candidate, byWinProb bool) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := &cands[i], &cands[j]
		if len(a.ExpValues) == 0 || len(b.ExpValues) == 0 {
			return len(a.ExpValues) > len(b.ExpValues)
		}
		if byWinProb {
			return a.WinProbs[0] > b.WinProbs[0]
		}
		return a.ExpValues[0] > b.ExpValues[0]
	})
}

// DiscardPriorities breaks ties between discards whose values are equal at
// a given turn: higher is discarded first. Honors go before terminals,
// terminals before middles, and red fives after everything else.
var DiscardPriorities = [tile.NumKindsWithAka]int{
	7, 6, 5, 4, 3, 4, 5, 6, 7, // manzu
	7, 6, 5, 4, 3, 4, 5, 6, 7, // pinzu
	7, 6, 5, 4, 3, 4, 5, 6, 7, // sozu
	8, 8, 8, 8, 8, 8, 8, // honors
	0, 0, 0, // red fives
}
