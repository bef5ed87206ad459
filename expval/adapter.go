package expval

import (
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/score"
	"github.com/mikansei/ukeire/tile"
)

// uradoraWallSize fixes the wall size used for the exact single-indicator
// blend. Counting the true remainder barely moves the result, so the
// turn-0 wall of 121 is used throughout.
const uradoraWallSize = 121

// leafScores evaluates a completed hand and returns the four-entry score
// vector indexed by the extra-han bonus (double riichi, ippatsu, haitei)
// the search attributes per turn. A hand with no yaku returns all zeros.
func (c *Calculator) leafScores(h *hand.Hand, winTile tile.Tile, counts []int) []float64 {
	upScores := c.upScores(h, winTile)

	scores := make([]float64, 4)
	if len(upScores) == 0 {
		return scores
	}
	last := len(upScores) - 1
	nDora := len(c.doraIndicators)

	switch {
	case c.calcUradora && nDora == 1:
		// One indicator: blend exactly over the positions the hidden
		// indicator could take, using the live counts of each held
		// kind's indicator tile.
		var nIndicators [5]float64
		sumIndicators := 0
		handCounts := h.Counts()
		for k := 0; k < tile.NumKinds; k++ {
			if n := handCounts[k]; n > 0 {
				ind := tile.IndicatorFor(tile.Tile(k))
				nIndicators[n] += float64(counts[ind])
				sumIndicators += counts[ind]
			}
		}
		var uradoraProbs [5]float64
		uradoraProbs[0] = float64(uradoraWallSize-sumIndicators) / uradoraWallSize
		for i := 1; i < 5; i++ {
			uradoraProbs[i] = nIndicators[i] / uradoraWallSize
		}
		for base := 0; base < 4; base++ {
			for i := 0; i < 5; i++ {
				scores[base] += float64(upScores[min(base+i, last)]) * uradoraProbs[i]
			}
		}
	case c.calcUradora && nDora > 1:
		// Several indicators: use the measured distribution.
		row := c.uradora[min(nDora, len(c.uradora)-1)]
		for base := 0; base < 4; base++ {
			for i := 0; i <= maxUradora && i < len(row); i++ {
				scores[base] += float64(upScores[min(base+i, last)]) * row[i]
			}
		}
	default:
		for base := 0; base < 4; base++ {
			scores[base] = float64(upScores[min(base, last)])
		}
	}
	return scores
}

// upScores runs the external score calculator once per (hand, winning
// tile), caching the per-extra-han point array. An empty slice means the
// hand had no yaku.
func (c *Calculator) upScores(h *hand.Hand, winTile tile.Tile) []int {
	key := scoreKey{hand: fingerprintHand(h), win: winTile}
	if cached, ok := c.scoreCache[key]; ok {
		return cached
	}

	flags := score.FlagTsumo
	if h.IsMenzen() {
		flags |= score.FlagRiichi
	}
	result := c.scoreCalc.Calc(h, winTile, flags)

	var upScores []int
	if result.Success {
		upScores = c.scoreCalc.ScoresForExp(result)
	}
	c.scoreCache[key] = upScores
	return upScores
}
