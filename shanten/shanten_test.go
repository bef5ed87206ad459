package shanten

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/tile"
)

func TestNormal(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		hand    string
		syanten int
	}{
		// complete: four sets and a pair
		{"111222333m44455p", -1},
		{"123m456m789m123p55s", -1},
		// tenpai
		{"222567m345p33667s", 0}, // 14 tiles, keeps tenpai on several discards
		{"123m456p789s1122z", 0},
		// one away
		{"123m456p79s11224z", 1},
		// far out
		{"159m159p159s1234z", 8},
	}
	for _, c := range cases {
		h := hand.MustFromString(c.hand)
		_, s := Calc(h, TypeNormal)
		is.Equal(s, c.syanten)
	}
}

func TestNormalWithMelds(t *testing.T) {
	is := is.New(t)
	chi, err := tile.ParseMany("567m")
	is.NoErr(err)
	tiles, err := tile.ParseMany("222m345p33667s")
	is.NoErr(err)
	h := hand.New(tiles, hand.Meld{Type: hand.MeldChi, Tiles: chi})
	// 222m + [567m] + 345p + 33s pair, 667s: tenpai
	_, s := Calc(h, TypeNormal)
	is.Equal(s, 0)
}

func TestTiitoi(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		hand    string
		syanten int
	}{
		{"1122334455667m7m", -1},
		{"11335577m1199p3s", 0},
		{"11335577m119p38s", 1},
		// third copies never help toward seven pairs
		{"111133557799m11p", 1},
	}
	for _, c := range cases {
		h := hand.MustFromString(c.hand)
		_, s := Calc(h, TypeTiitoi)
		is.Equal(s, c.syanten)
	}
}

func TestKokusi(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		hand    string
		syanten int
	}{
		{"19m19p19s12345677z", -1},
		{"19m19p19s1234567z", 0},
		{"19m19p19s123456z5m", 1},
	}
	for _, c := range cases {
		h := hand.MustFromString(c.hand)
		_, s := Calc(h, TypeKokusi)
		is.Equal(s, c.syanten)
	}
}

func TestUnionPicksMinimum(t *testing.T) {
	is := is.New(t)
	h := hand.MustFromString("11335577m1199p3s")
	typ, s := Calc(h, TypeUnion)
	is.Equal(s, 0)
	is.Equal(typ, TypeTiitoi)
}

func TestCalcDoesNotMutate(t *testing.T) {
	is := is.New(t)
	h := hand.MustFromString("123m456p79s11224z")
	before := h.Counts()
	Calc(h, TypeUnion)
	is.Equal(before, h.Counts())
}
