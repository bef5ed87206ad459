package expval

import (
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/tile"
)

// draw explores one self-draw stage. It dispatches to the tegawari-aware
// variant only at the root (regression budget still unspent), matching the
// rule that a shape trade may be paid for once per path.
func (c *Calculator) draw(nExtraTumo, syanten int, h *hand.Hand, counts []int) vecs {
	if c.calcTegawari && nExtraTumo == 0 {
		return c.drawWithTegawari(nExtraTumo, syanten, h, counts)
	}
	return c.drawWithoutTegawari(nExtraTumo, syanten, h, counts)
}

func (c *Calculator) newVecs() vecs {
	return vecs{
		tenpai: make([]float64, c.maxTumo),
		win:    make([]float64, c.maxTumo),
		ev:     make([]float64, c.maxTumo),
	}
}

// drawWithoutTegawari folds every useful draw (shanten change -1) into the
// per-turn vectors using the hypergeometric-style joint probability of
// first drawing the tile on turn j given the search is at turn i.
func (c *Calculator) drawWithoutTegawari(nExtraTumo, syanten int, h *hand.Hand, counts []int) vecs {
	table := c.drawCache[syanten]
	key := c.key(h, counts, nExtraTumo)
	if v, ok := table[key]; ok {
		return v
	}

	out := c.newVecs()
	flags := c.drawTiles(h, syanten, counts)

	sumRequired := 0
	for _, f := range flags {
		if f.diff == -1 {
			sumRequired += f.count
		}
	}

	for _, f := range flags {
		if f.diff != -1 {
			continue
		}

		tumoProbs := c.tumoProbTable[f.count]
		notTumoProbs := c.notTumoProbTable[sumRequired]

		addTileDrawn(h, f.t, counts)

		var next vecs
		var scores []float64
		if syanten == 0 {
			scores = c.leafScores(h, f.t, counts)
		} else {
			next = c.discard(nExtraTumo, syanten-1, h, counts)
		}

		for i := 0; i < c.maxTumo; i++ {
			if notTumoProbs[i] == 0 {
				continue
			}
			for j := i; j < c.maxTumo; j++ {
				// Probability of drawing this tile on turn j given no
				// useful tile arrived on turns i..j-1.
				prob := tumoProbs[j] * notTumoProbs[j] / notTumoProbs[i]

				if syanten == 1 {
					out.tenpai[i] += prob
				} else if j < c.maxTumo-1 && syanten > 1 {
					out.tenpai[i] += prob * next.tenpai[j+1]
				}

				if syanten == 0 && scores[0] != 0 {
					bonus := 0
					if i == 0 && c.calcDoubleReach {
						bonus++
					}
					if j == i && c.calcIppatu {
						bonus++
					}
					if j == c.maxTumo-1 && c.calcHaitei {
						bonus++
					}
					out.win[i] += prob
					out.ev[i] += prob * scores[bonus]
				} else if j < c.maxTumo-1 && syanten > 0 {
					out.win[i] += prob * next.win[j+1]
					out.ev[i] += prob * next.ev[j+1]
				}
			}
		}

		removeTileDrawn(h, f.t, counts)
	}

	table[key] = out
	return out
}

// drawWithTegawari additionally folds neutral draws (shanten change 0) as
// shape trades. In this variant both useful and neutral draws use the flat
// count/wall marginal, aligned turn to turn without the survival factor,
// so the cumulative probability cannot exceed one; the survival model
// cannot track which non-useful tiles were already drawn.
func (c *Calculator) drawWithTegawari(nExtraTumo, syanten int, h *hand.Hand, counts []int) vecs {
	table := c.drawCache[syanten]
	key := c.key(h, counts, nExtraTumo)
	if v, ok := table[key]; ok {
		return v
	}

	out := c.newVecs()
	flags := c.drawTiles(h, syanten, counts)

	sumLeftTiles := 0
	for k := 0; k < tile.NumKinds; k++ {
		sumLeftTiles += counts[k]
	}

	for _, f := range flags {
		if f.diff != -1 {
			continue
		}

		addTileDrawn(h, f.t, counts)

		var next vecs
		var scores []float64
		if syanten == 0 {
			scores = c.leafScores(h, f.t, counts)
		} else {
			next = c.discard(nExtraTumo, syanten-1, h, counts)
		}

		for i := 0; i < c.maxTumo; i++ {
			tumoProb := float64(f.count) / float64(sumLeftTiles)

			if syanten == 1 {
				out.tenpai[i] += tumoProb
			} else if i < c.maxTumo-1 && syanten > 1 {
				out.tenpai[i] += tumoProb * next.tenpai[i+1]
			}

			if syanten == 0 {
				bonus := 0
				if i == 0 && c.calcDoubleReach {
					bonus++
				}
				if c.calcIppatu {
					bonus++
				}
				if i == c.maxTumo-1 && c.calcHaitei {
					bonus++
				}
				out.win[i] += tumoProb
				out.ev[i] += tumoProb * scores[bonus]
			} else if i < c.maxTumo-1 {
				out.win[i] += tumoProb * next.win[i+1]
				out.ev[i] += tumoProb * next.ev[i+1]
			}
		}

		removeTileDrawn(h, f.t, counts)
	}

	for _, f := range flags {
		if f.diff != 0 {
			continue
		}

		addTileDrawn(h, f.t, counts)
		next := c.discard(nExtraTumo+1, syanten, h, counts)

		for i := 0; i < c.maxTumo-1; i++ {
			tumoProb := float64(f.count) / float64(sumLeftTiles)
			out.tenpai[i] += tumoProb * next.tenpai[i+1]
			out.win[i] += tumoProb * next.win[i+1]
			out.ev[i] += tumoProb * next.ev[i+1]
		}

		removeTileDrawn(h, f.t, counts)
	}

	table[key] = out
	return out
}

// discard explores one discard stage: for every legal discard it recurses
// into the draw stage and then, per turn independently, keeps the best
// candidate's entries. Ties go to the tile with the higher static discard
// priority.
func (c *Calculator) discard(nExtraTumo, syanten int, h *hand.Hand, counts []int) vecs {
	table := c.discardCache[syanten]
	key := c.key(h, counts, nExtraTumo)
	if v, ok := table[key]; ok {
		return v
	}

	flags := c.discardTiles(h, syanten)

	best := c.newVecs()
	bestValues := make([]float64, c.maxTumo)
	bestTiles := make([]int, c.maxTumo)
	for i := range bestValues {
		bestValues[i] = -1
		bestTiles[i] = -1
	}

	for _, f := range flags {
		var res vecs
		switch {
		case f.diff == 0:
			removeTile(h, f.t)
			res = c.draw(nExtraTumo, syanten, h, counts)
			addTile(h, f.t)
		case c.calcSyantenDown && nExtraTumo == 0 && f.diff == 1 && syanten < 3:
			removeTile(h, f.t)
			res = c.draw(nExtraTumo+1, syanten+1, h, counts)
			addTile(h, f.t)
		default:
			continue
		}

		for i := 0; i < c.maxTumo; i++ {
			var value float64
			if c.maximizeWinProb {
				value = float64(int(res.win[i] * 10000))
			} else {
				value = float64(int(res.ev[i]))
			}
			better := value > bestValues[i]
			if !better && value == bestValues[i] && bestTiles[i] >= 0 &&
				DiscardPriorities[bestTiles[i]] < DiscardPriorities[f.t] {
				better = true
			}
			if better {
				best.tenpai[i] = res.tenpai[i]
				best.win[i] = res.win[i]
				best.ev[i] = res.ev[i]
				bestValues[i] = value
				bestTiles[i] = int(f.t)
			}
		}
	}

	table[key] = best
	return best
}
