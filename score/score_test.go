package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/tile"
)

func TestClosedTsumoRiichi(t *testing.T) {
	// 222m 567m 345p 33s 789s, winning on 4p.
	h := hand.MustFromString("222567m345p33789s")
	c := NewCalculator()
	r := c.Calc(h, tile.Pinzu4, FlagTsumo|FlagRiichi)
	assert.True(t, r.Success)
	assert.Equal(t, 2, r.Han) // riichi + menzen tsumo
	assert.Greater(t, r.Points, 0)
}

func TestNoYakuOpenHand(t *testing.T) {
	chi, _ := tile.ParseMany("567m")
	tiles, _ := tile.ParseMany("22789m345p567s")
	h := hand.New(tiles, hand.Meld{Type: hand.MeldChi, Tiles: chi})
	c := NewCalculator()
	r := c.Calc(h, tile.Manzu2, FlagTsumo)
	assert.False(t, r.Success)
	assert.Equal(t, 0, r.Points)
}

func TestTanyaoOpenHand(t *testing.T) {
	pon, _ := tile.ParseMany("333m")
	tiles, _ := tile.ParseMany("55m456p234678s")
	h := hand.New(tiles, hand.Meld{Type: hand.MeldPon, Tiles: pon})
	c := NewCalculator()
	r := c.Calc(h, tile.Pinzu4, FlagTsumo)
	assert.True(t, r.Success)
	yakuNames := make([]string, 0, len(r.Yaku))
	for _, y := range r.Yaku {
		yakuNames = append(yakuNames, y.Name)
	}
	assert.Contains(t, yakuNames, "tanyao")
}

func TestChiitoitsu(t *testing.T) {
	h := hand.MustFromString("11335577m1199p33s")
	c := NewCalculator()
	r := c.Calc(h, tile.Sozu3, FlagTsumo|FlagRiichi)
	assert.True(t, r.Success)
	assert.Equal(t, 25, r.Fu)
	assert.Equal(t, 4, r.Han) // chiitoitsu + riichi + tsumo
}

func TestKokushi(t *testing.T) {
	h := hand.MustFromString("19m19p19s12345677z")
	c := NewCalculator()
	r := c.Calc(h, tile.Tyun, FlagTsumo)
	assert.True(t, r.Success)
	assert.Equal(t, 13, r.Han)
	assert.Equal(t, 32000, r.Points)
}

func TestDoraCounting(t *testing.T) {
	// Indicator 1z makes 2z (Nan) the dora; the hand holds a Nan triplet.
	h := hand.MustFromString("222567m345p33s222z")
	c := NewCalculator()
	c.DoraIndicators = []tile.Tile{tile.Ton}
	r := c.Calc(h, tile.Pinzu4, FlagTsumo|FlagRiichi)
	assert.True(t, r.Success)
	// riichi + tsumo + 3 dora at minimum
	assert.GreaterOrEqual(t, r.Han, 5)
}

func TestPinfu(t *testing.T) {
	// All runs, valueless pair, two-sided wait on 6s (456s run won on 6).
	h := hand.MustFromString("234567m234p45622s")
	c := NewCalculator()
	r := c.Calc(h, tile.Sozu6, FlagTsumo)
	assert.True(t, r.Success)
	yakuNames := make([]string, 0, len(r.Yaku))
	for _, y := range r.Yaku {
		yakuNames = append(yakuNames, y.Name)
	}
	assert.Contains(t, yakuNames, "pinfu")
	assert.Equal(t, 20, r.Fu)
}

func TestScoresForExpMonotonic(t *testing.T) {
	h := hand.MustFromString("222567m345p33789s")
	c := NewCalculator()
	r := c.Calc(h, tile.Pinzu4, FlagTsumo|FlagRiichi)
	assert.True(t, r.Success)

	scores := c.ScoresForExp(r)
	assert.NotEmpty(t, scores)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i], scores[i-1])
	}
	// the array reaches the yakuman limit
	assert.Equal(t, 32000, scores[len(scores)-1])
}

func TestScoresForExpNoYaku(t *testing.T) {
	c := NewCalculator()
	assert.Equal(t, []int{0}, c.ScoresForExp(Result{}))
}
