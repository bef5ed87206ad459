// Package expval is the expected-value search engine. Starting from a 13-
// or 14-tile hand it explores every discard/draw sequence down to the
// winning state and reports, per candidate discard, the per-turn
// probabilities of reaching tenpai, of winning, and the expected score.
//
// The engine is a pure function of its inputs. It is single-threaded: a
// Calculator must not be shared between concurrent calls; give each
// goroutine its own.
package expval

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mikansei/ukeire/config"
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/score"
	"github.com/mikansei/ukeire/shanten"
	"github.com/mikansei/ukeire/tile"
)

// maxCachedSyanten is the deepest shanten level with its own search cache.
// The full search starts only from hands at shanten 3 or less; hands at
// shanten 4 or more get a useful-tile listing only.
const maxCachedSyanten = 4

// Calculator runs expected-value analyses. The zero value is not usable;
// construct with NewCalculator.
type Calculator struct {
	cfg *config.Config

	scoreCalc      *score.Calculator
	syantenType    shanten.Type
	doraIndicators []tile.Tile

	calcSyantenDown  bool
	calcTegawari     bool
	calcDoubleReach  bool
	calcIppatu       bool
	calcHaitei       bool
	calcUradora      bool
	calcAkaTumo      bool
	maximizeWinProb  bool
	syantenDownShift bool

	maxTumo          int
	tumoProbTable    [][]float64
	notTumoProbTable [][]float64

	drawCache    [maxCachedSyanten + 1]map[cacheKey]vecs
	discardCache [maxCachedSyanten + 1]map[cacheKey]vecs
	scoreCache   map[scoreKey][]int

	uradora         [][]float64
	warnUradoraOnce sync.Once
}

// NewCalculator builds a Calculator. cfg may be nil, in which case defaults
// are used (data files looked up under ./data).
func NewCalculator(cfg *config.Config) *Calculator {
	if cfg == nil {
		cfg = &config.Config{}
		if err := cfg.Load(nil); err != nil {
			log.Error().Err(err).Msg("loading default config")
		}
	}
	c := &Calculator{cfg: cfg}
	c.clearCache()
	return c
}

// Calc analyzes the hand, counting remaining tiles from the hand and dora
// indicators alone.
func (c *Calculator) Calc(h *hand.Hand, sc *score.Calculator, doraIndicators []tile.Tile,
	typ shanten.Type, flag Flag) ([]Candidate, error) {

	counts, err := CountLeftTiles(h, doraIndicators)
	if err != nil {
		return nil, err
	}
	return c.CalcWithCounts(h, sc, doraIndicators, typ, counts, flag)
}

// CalcWithCounts analyzes the hand against a caller-supplied remaining-
// counts vector (37 entries), for callers that track additional visible
// tiles themselves.
func (c *Calculator) CalcWithCounts(h *hand.Hand, sc *score.Calculator, doraIndicators []tile.Tile,
	typ shanten.Type, counts []int, flag Flag) ([]Candidate, error) {

	if len(counts) != tile.NumKindsWithAka {
		return nil, ErrInvalidCounts
	}

	c.scoreCalc = sc
	c.syantenType = typ
	c.doraIndicators = doraIndicators

	c.calcSyantenDown = flag&CalcSyantenDown != 0
	c.calcTegawari = flag&CalcTegawari != 0
	c.calcDoubleReach = flag&CalcDoubleReach != 0
	c.calcIppatu = flag&CalcIppatu != 0
	c.calcHaitei = flag&CalcHaiteitumo != 0
	c.calcUradora = flag&CalcUradora != 0
	c.calcAkaTumo = flag&CalcAkaTileTumo != 0
	c.maximizeWinProb = flag&MaximaizeWinProb != 0
	c.syantenDownShift = flag&CalcSyantenDownShift != 0

	nTiles := h.NumTiles() + 3*len(h.Melds())
	if nTiles != 13 && nTiles != 14 {
		return nil, ErrInvalidHandSize
	}
	if nTiles == 13 {
		c.maxTumo = 18
	} else {
		c.maxTumo = 17
	}

	_, syanten := shanten.Calc(h, typ)
	if syanten == -1 {
		return nil, ErrAlreadyWinning
	}

	c.loadUradora()

	sumLeftTiles := 0
	for k := 0; k < tile.NumKinds; k++ {
		sumLeftTiles += counts[k]
	}
	c.createProbTables(sumLeftTiles)

	work := h.Copy()
	workCounts := make([]int, len(counts))
	copy(workCounts, counts)

	c.clearCache()
	log.Debug().
		Str("hand", h.String()).
		Int("syanten", syanten).
		Int("wall", sumLeftTiles).
		Msg("analyzing")

	var candidates []Candidate
	if nTiles == 14 {
		if syanten <= 3 {
			candidates = c.analyzeDiscardFull(0, syanten, work, workCounts)
		} else {
			candidates = c.analyzeDiscardShallow(syanten, work, workCounts)
		}
	} else {
		if syanten <= 3 {
			candidates = c.analyzeDrawFull(0, syanten, work, workCounts)
		} else {
			candidates = c.analyzeDrawShallow(syanten, work, workCounts)
		}
	}

	c.clearCache()
	return candidates, nil
}

// analyzeDiscardFull evaluates every discard down to the winning state.
func (c *Calculator) analyzeDiscardFull(nExtraTumo, syanten int, h *hand.Hand, counts []int) []Candidate {
	var candidates []Candidate
	for _, f := range c.discardTiles(h, syanten) {
		switch {
		case f.diff == 0:
			removeTile(h, f.t)
			required := RequiredTiles(h, c.syantenType, counts)
			res := c.draw(nExtraTumo, syanten, h, counts)
			addTile(h, f.t)

			cand := c.newCandidate(f.t, required, res, false)
			if syanten == 0 {
				for i := range cand.TenpaiProbs {
					cand.TenpaiProbs[i] = 1
				}
			}
			candidates = append(candidates, cand)

		case c.calcSyantenDown && f.diff == 1 && syanten < 3:
			removeTile(h, f.t)
			required := RequiredTiles(h, c.syantenType, counts)
			res := c.draw(nExtraTumo+1, syanten+1, h, counts)
			addTile(h, f.t)

			cand := c.newCandidate(f.t, required, res, true)
			if c.syantenDownShift {
				shiftForward(cand.TenpaiProbs)
				shiftForward(cand.WinProbs)
				shiftForward(cand.ExpValues)
			}
			candidates = append(candidates, cand)
		}
	}
	return candidates
}

// analyzeDiscardShallow lists discards with their useful tiles only.
func (c *Calculator) analyzeDiscardShallow(syanten int, h *hand.Hand, counts []int) []Candidate {
	var candidates []Candidate
	for _, f := range c.discardTiles(h, syanten) {
		removeTile(h, f.t)
		required := RequiredTiles(h, c.syantenType, counts)
		addTile(h, f.t)
		candidates = append(candidates, Candidate{
			Tile:          f.t,
			RequiredTiles: required,
			SyantenDown:   f.diff == 1,
		})
	}
	return candidates
}

// analyzeDrawFull evaluates the single pure-draw candidate of a 13-tile
// hand down to the winning state.
func (c *Calculator) analyzeDrawFull(nExtraTumo, syanten int, h *hand.Hand, counts []int) []Candidate {
	required := RequiredTiles(h, c.syantenType, counts)
	res := c.draw(nExtraTumo, syanten, h, counts)

	cand := c.newCandidate(tile.Null, required, res, false)
	if syanten == 0 {
		for i := range cand.TenpaiProbs {
			cand.TenpaiProbs[i] = 1
		}
	}
	return []Candidate{cand}
}

func (c *Calculator) analyzeDrawShallow(syanten int, h *hand.Hand, counts []int) []Candidate {
	required := RequiredTiles(h, c.syantenType, counts)
	return []Candidate{{Tile: tile.Null, RequiredTiles: required}}
}

// newCandidate copies the search vectors into a Candidate; the memoized
// originals must stay untouched.
func (c *Calculator) newCandidate(t tile.Tile, required []RequiredTile, res vecs, syantenDown bool) Candidate {
	cand := Candidate{
		Tile:          t,
		RequiredTiles: required,
		TenpaiProbs:   make([]float64, c.maxTumo),
		WinProbs:      make([]float64, c.maxTumo),
		ExpValues:     make([]float64, c.maxTumo),
		SyantenDown:   syantenDown,
	}
	copy(cand.TenpaiProbs, res.tenpai)
	copy(cand.WinProbs, res.win)
	copy(cand.ExpValues, res.ev)
	return cand
}

// shiftForward moves every entry one turn earlier and zeroes the last.
func shiftForward(v []float64) {
	copy(v, v[1:])
	if len(v) > 0 {
		v[len(v)-1] = 0
	}
}
