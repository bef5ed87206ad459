package hand

import (
	"strings"

	"github.com/mikansei/ukeire/tile"
)

// MeldType is the kind of an exposed or concealed tile group.
type MeldType uint8

const (
	MeldPon MeldType = iota
	MeldChi
	MeldAnkan
	MeldMinkan
)

func (m MeldType) String() string {
	switch m {
	case MeldPon:
		return "pon"
	case MeldChi:
		return "chi"
	case MeldAnkan:
		return "ankan"
	case MeldMinkan:
		return "minkan"
	}
	return "unknown"
}

// Meld is a called or concealed-kan tile group. Each meld contributes
// exactly three tiles to the logical hand size (a kan's fourth tile is a
// replacement draw and does not change the count).
type Meld struct {
	Type  MeldType
	Tiles []tile.Tile
}

// Open reports whether the meld breaks concealment. Ankan does not.
func (m Meld) Open() bool {
	return m.Type != MeldAnkan
}

// ContainsAka reports whether the meld holds a red five.
func (m Meld) ContainsAka(aka tile.Tile) bool {
	for _, t := range m.Tiles {
		if t == aka {
			return true
		}
	}
	return false
}

func (m Meld) String() string {
	var sb strings.Builder
	sb.WriteString(m.Type.String())
	sb.WriteByte(' ')
	sb.WriteString(tile.FormatMany(m.Tiles))
	return sb.String()
}
