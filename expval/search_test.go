package expval

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/shanten"
)

// The search mutates the hand and counts in place; every call must restore
// them exactly. The fingerprints catch any unbalanced add/remove.

func TestDrawRestoresState(t *testing.T) {
	is := is.New(t)
	c := newTestCalc(18)

	h := hand.MustFromString("222567m345p3366s") // tenpai
	counts, err := CountLeftTiles(h, nil)
	is.NoErr(err)

	before := fingerprintState(h, counts)
	res := c.draw(0, 0, h, counts)
	after := fingerprintState(h, counts)

	is.Equal(before, after)
	is.Equal(len(res.tenpai), 18)
	is.True(res.win[0] > 0)
}

func TestDrawRestoresStateOneShanten(t *testing.T) {
	is := is.New(t)
	c := newTestCalc(18)

	h := hand.MustFromString("222567m34p33667s") // one from tenpai
	counts, err := CountLeftTiles(h, nil)
	is.NoErr(err)
	_, syanten := shanten.Calc(h, shanten.TypeNormal)
	is.Equal(syanten, 1)

	before := fingerprintState(h, counts)
	c.draw(0, syanten, h, counts)
	after := fingerprintState(h, counts)
	is.Equal(before, after)
}

func TestDiscardRestoresState(t *testing.T) {
	is := is.New(t)
	c := newTestCalc(17)

	h := hand.MustFromString("222567m345p33667s") // 14 tiles, tenpai
	counts, err := CountLeftTiles(h, nil)
	is.NoErr(err)

	before := fingerprintState(h, counts)
	res := c.discard(0, 0, h, counts)
	after := fingerprintState(h, counts)

	is.Equal(before, after)
	for i := 0; i < c.maxTumo; i++ {
		is.True(res.win[i] >= 0)
		is.True(res.win[i] <= 1)
	}
}

func TestDrawRestoresStateWithTegawari(t *testing.T) {
	is := is.New(t)
	c := newTestCalc(18)
	c.calcTegawari = true

	h := hand.MustFromString("222567m34p33667s")
	counts, err := CountLeftTiles(h, nil)
	is.NoErr(err)
	_, syanten := shanten.Calc(h, shanten.TypeNormal)

	before := fingerprintState(h, counts)
	c.draw(0, syanten, h, counts)
	after := fingerprintState(h, counts)
	is.Equal(before, after)
}

func TestDrawMemoization(t *testing.T) {
	is := is.New(t)
	c := newTestCalc(18)

	h := hand.MustFromString("222567m34p33667s")
	counts, err := CountLeftTiles(h, nil)
	is.NoErr(err)

	first := c.draw(0, 1, h, counts)
	cached := c.draw(0, 1, h, counts)
	is.Equal(first.win, cached.win)
	is.Equal(first.ev, cached.ev)
	is.True(len(c.drawCache[1]) > 0)
}

func TestVectorBounds(t *testing.T) {
	is := is.New(t)
	c := newTestCalc(18)

	h := hand.MustFromString("222567m34p33667s") // 1-shanten
	counts, err := CountLeftTiles(h, nil)
	is.NoErr(err)

	res := c.draw(0, 1, h, counts)
	for i := 0; i < c.maxTumo; i++ {
		is.True(res.tenpai[i] >= 0 && res.tenpai[i] <= 1+1e-9)
		is.True(res.win[i] >= 0 && res.win[i] <= 1+1e-9)
		is.True(res.win[i] <= res.tenpai[i]+1e-9)
		is.True(res.ev[i] >= 0)
	}
}
