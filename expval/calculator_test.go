package expval

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikansei/ukeire/config"
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/score"
	"github.com/mikansei/ukeire/shanten"
	"github.com/mikansei/ukeire/tile"
)

func testConfig() *config.Config {
	return &config.Config{DataPath: "../data"}
}

func runCalc(t *testing.T, handStr string, indicators []tile.Tile, flag Flag) []Candidate {
	t.Helper()
	h := hand.MustFromString(handStr)
	sc := score.NewCalculator()
	sc.DoraIndicators = indicators
	c := NewCalculator(testConfig())
	candidates, err := c.Calc(h, sc, indicators, shanten.TypeNormal, flag)
	assert.NoError(t, err)
	return candidates
}

func TestTenpaiHand(t *testing.T) {
	candidates := runCalc(t, "222567m345p33667s", nil, 0)
	assert.NotEmpty(t, candidates)

	seen := map[tile.Tile]bool{}
	for _, cand := range candidates {
		assert.False(t, seen[cand.Tile], "duplicate candidate %v", cand.Tile)
		seen[cand.Tile] = true
		assert.False(t, cand.SyantenDown)
		// every discard that keeps tenpai reports certainty of tenpai
		for _, p := range cand.TenpaiProbs {
			assert.Equal(t, 1.0, p)
		}
	}
}

func TestSingleWaitWithHonor(t *testing.T) {
	candidates := runCalc(t, "222567m34p33667s1z", nil, 0)
	assert.NotEmpty(t, candidates)

	SortCandidates(candidates, false)
	top := candidates[0]
	assert.Equal(t, tile.Ton, top.Tile)
	assert.Greater(t, top.WinProbs[0], 0.0)
}

func TestThirteenTileHand(t *testing.T) {
	candidates := runCalc(t, "222567m34p33667s", nil, 0)
	assert.Len(t, candidates, 1)
	assert.Equal(t, tile.Null, candidates[0].Tile)
	assert.NotEmpty(t, candidates[0].RequiredTiles)
	assert.Len(t, candidates[0].TenpaiProbs, 18)
}

func TestChiitoitsuRequiredTiles(t *testing.T) {
	h := hand.MustFromString("11335577m1199p3s")
	sc := score.NewCalculator()
	c := NewCalculator(testConfig())
	candidates, err := c.Calc(h, sc, nil, shanten.TypeTiitoi, 0)
	assert.NoError(t, err)
	assert.Len(t, candidates, 1)

	// the only useful tile is the one held as a single copy
	assert.Len(t, candidates[0].RequiredTiles, 1)
	assert.Equal(t, tile.Sozu3, candidates[0].RequiredTiles[0].Tile)
}

func TestSyantenDownCandidates(t *testing.T) {
	baseline := runCalc(t, "222567m34p33667s1z", nil, 0)
	for _, cand := range baseline {
		assert.False(t, cand.SyantenDown)
	}

	withDown := runCalc(t, "222567m34p33667s1z", nil, CalcSyantenDown)
	hasDown := false
	for _, cand := range withDown {
		if cand.SyantenDown {
			hasDown = true
		}
	}
	assert.True(t, hasDown)
	assert.Greater(t, len(withDown), len(baseline))
}

func TestUradoraRaisesExpectedValue(t *testing.T) {
	indicators := []tile.Tile{tile.Nan}
	off := runCalc(t, "222567m34p33667s1z", indicators, 0)
	on := runCalc(t, "222567m34p33667s1z", indicators, CalcUradora)

	SortCandidates(off, false)
	SortCandidates(on, false)
	assert.Equal(t, off[0].Tile, on[0].Tile)
	assert.Greater(t, on[0].ExpValues[0], off[0].ExpValues[0])
}

func TestAlreadyWinning(t *testing.T) {
	h := hand.MustFromString("11122233344455m")
	sc := score.NewCalculator()
	c := NewCalculator(testConfig())
	_, err := c.Calc(h, sc, nil, shanten.TypeNormal, 0)
	assert.ErrorIs(t, err, ErrAlreadyWinning)
}

func TestInvalidHandSize(t *testing.T) {
	h := hand.MustFromString("123m456p")
	sc := score.NewCalculator()
	c := NewCalculator(testConfig())
	_, err := c.Calc(h, sc, nil, shanten.TypeNormal, 0)
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}

func TestDeterminism(t *testing.T) {
	a := runCalc(t, "222567m34p33667s1z", nil, CalcSyantenDown|CalcAkaTileTumo)
	b := runCalc(t, "222567m34p33667s1z", nil, CalcSyantenDown|CalcAkaTileTumo)
	assert.True(t, reflect.DeepEqual(a, b))
}

func TestFlagRoundTripMatchesBaseline(t *testing.T) {
	baseline := runCalc(t, "222567m34p33667s1z", nil, 0)
	for _, flag := range []Flag{CalcDoubleReach, CalcIppatu, CalcHaiteitumo, CalcAkaTileTumo} {
		runCalc(t, "222567m34p33667s1z", nil, flag)
		again := runCalc(t, "222567m34p33667s1z", nil, 0)
		assert.True(t, reflect.DeepEqual(baseline, again), "flag %v leaked state", flag)
	}
}

func TestFarFromTenpaiListsUsefulTilesOnly(t *testing.T) {
	// 14 tiles, far from ready: vectors stay empty, useful tiles listed.
	candidates := runCalc(t, "149m258p369s12345z", nil, 0)
	assert.NotEmpty(t, candidates)
	for _, cand := range candidates {
		assert.Empty(t, cand.TenpaiProbs)
		assert.Empty(t, cand.WinProbs)
		assert.Empty(t, cand.ExpValues)
	}
}

func TestShallowCandidatesCoverAllKinds(t *testing.T) {
	candidates := runCalc(t, "149m258p369s12345z", nil, 0)
	h := hand.MustFromString("149m258p369s12345z")
	counts := h.Counts()
	kinds := 0
	for _, c := range counts {
		if c > 0 {
			kinds++
		}
	}
	assert.Len(t, candidates, kinds)
}

func TestBonusFlagsRaiseExpectedValue(t *testing.T) {
	plain := runCalc(t, "222567m34p33667s1z", nil, 0)
	bonus := runCalc(t, "222567m34p33667s1z", nil, CalcDoubleReach|CalcIppatu|CalcHaiteitumo)

	SortCandidates(plain, false)
	SortCandidates(bonus, false)
	assert.GreaterOrEqual(t, bonus[0].ExpValues[0], plain[0].ExpValues[0])
}

func TestWinProbNeverExceedsTenpaiProb(t *testing.T) {
	candidates := runCalc(t, "222567m34p33667s1z", nil, 0)
	for _, cand := range candidates {
		for i := range cand.WinProbs {
			assert.LessOrEqual(t, cand.WinProbs[i], cand.TenpaiProbs[i]+1e-9)
		}
	}
}
