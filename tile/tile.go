// Package tile defines the 34 base tile kinds of riichi mahjong plus the
// three red-five variants, and conversions between machine and user-visible
// representations.
package tile

import "fmt"

// Tile is a tile kind. Values 0-33 are the base kinds (manzu, pinzu, sozu,
// honors), 34-36 are the red fives. Null is used as a sentinel for "no tile"
// (for example, the discard slot of a pure-draw analysis).
type Tile int

const (
	Manzu1 Tile = iota
	Manzu2
	Manzu3
	Manzu4
	Manzu5
	Manzu6
	Manzu7
	Manzu8
	Manzu9
	Pinzu1
	Pinzu2
	Pinzu3
	Pinzu4
	Pinzu5
	Pinzu6
	Pinzu7
	Pinzu8
	Pinzu9
	Sozu1
	Sozu2
	Sozu3
	Sozu4
	Sozu5
	Sozu6
	Sozu7
	Sozu8
	Sozu9
	Ton
	Nan
	Sya
	Pe
	Haku
	Hatu
	Tyun
	AkaManzu5
	AkaPinzu5
	AkaSozu5
)

const (
	Null Tile = -1
	// NumKinds is the number of base kinds.
	NumKinds = 34
	// NumKindsWithAka includes the three red-five slots.
	NumKindsWithAka = 37
)

var names = [NumKindsWithAka]string{
	"1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m",
	"1p", "2p", "3p", "4p", "5p", "6p", "7p", "8p", "9p",
	"1s", "2s", "3s", "4s", "5s", "6s", "7s", "8s", "9s",
	"1z", "2z", "3z", "4z", "5z", "6z", "7z",
	"0m", "0p", "0s",
}

func (t Tile) String() string {
	if t == Null {
		return "--"
	}
	if t < 0 || int(t) >= NumKindsWithAka {
		return fmt.Sprintf("Tile(%d)", int(t))
	}
	return names[t]
}

// IsValid reports whether t is one of the 37 concrete kinds.
func (t Tile) IsValid() bool {
	return t >= 0 && int(t) < NumKindsWithAka
}

// IsAka reports whether t is a red five.
func (t Tile) IsAka() bool {
	return t == AkaManzu5 || t == AkaPinzu5 || t == AkaSozu5
}

// IsSuit reports whether t is a numbered suit tile (red fives included).
func (t Tile) IsSuit() bool {
	return (t >= Manzu1 && t <= Sozu9) || t.IsAka()
}

// IsHonor reports whether t is a wind or dragon.
func (t Tile) IsHonor() bool {
	return t >= Ton && t <= Tyun
}

// IsTerminal reports whether t is a 1 or a 9.
func (t Tile) IsTerminal() bool {
	if !t.IsSuit() || t.IsAka() {
		return false
	}
	n := t.Number()
	return n == 1 || n == 9
}

// IsYaochu reports whether t is a terminal or an honor.
func (t Tile) IsYaochu() bool {
	return t.IsTerminal() || t.IsHonor()
}

// Number returns the rank (1-9) of a suit tile, or 0 for honors.
func (t Tile) Number() int {
	n := t.Normalize()
	if n >= Ton {
		return 0
	}
	return int(n)%9 + 1
}

// Suit returns 0/1/2 for m/p/s and 3 for honors.
func (t Tile) Suit() int {
	return int(t.Normalize()) / 9
}

// Normalize maps a red five to its plain kind; other tiles map to themselves.
func (t Tile) Normalize() Tile {
	switch t {
	case AkaManzu5:
		return Manzu5
	case AkaPinzu5:
		return Pinzu5
	case AkaSozu5:
		return Sozu5
	}
	return t
}

// AkaOf returns the red variant of a plain five, or Null if t has none.
func AkaOf(t Tile) Tile {
	switch t {
	case Manzu5:
		return AkaManzu5
	case Pinzu5:
		return AkaPinzu5
	case Sozu5:
		return AkaSozu5
	}
	return Null
}

// DoraFor returns the dora kind indicated by an indicator tile: the next
// rank within a suit (wrapping 9 to 1), the next wind, or the next dragon.
func DoraFor(indicator Tile) Tile {
	ind := indicator.Normalize()
	switch {
	case ind < Ton:
		suit := int(ind) / 9
		return Tile(suit*9 + (int(ind)%9+1)%9)
	case ind <= Pe: // winds cycle E->S->W->N->E
		return Ton + (ind-Ton+1)%4
	default: // dragons cycle Haku->Hatu->Tyun->Haku
		return Haku + (ind-Haku+1)%3
	}
}

// IndicatorFor is the inverse of DoraFor: the indicator kind whose dora is t.
func IndicatorFor(t Tile) Tile {
	d := t.Normalize()
	switch {
	case d < Ton:
		suit := int(d) / 9
		return Tile(suit*9 + (int(d)%9+8)%9)
	case d <= Pe:
		return Ton + (d-Ton+3)%4
	default:
		return Haku + (d-Haku+2)%3
	}
}
