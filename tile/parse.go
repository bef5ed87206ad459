package tile

import (
	"fmt"
	"strings"
)

var suitOffsets = map[byte]Tile{'m': Manzu1, 'p': Pinzu1, 's': Sozu1, 'z': Ton}

// Parse converts a single-tile string ("5m", "0p", "7z") to a Tile.
func Parse(s string) (Tile, error) {
	tiles, err := ParseMany(s)
	if err != nil {
		return Null, err
	}
	if len(tiles) != 1 {
		return Null, fmt.Errorf("expected a single tile, got %q", s)
	}
	return tiles[0], nil
}

// ParseMany converts a grouped tile string such as "222567m345p33667s" to a
// list of tiles. A rank of 0 denotes the red five of its suit. Whitespace
// between groups is ignored.
func ParseMany(s string) ([]Tile, error) {
	var tiles []Tile
	var pending []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			if len(pending) > 0 {
				return nil, fmt.Errorf("dangling ranks %q in %q", pending, s)
			}
		case c >= '0' && c <= '9':
			pending = append(pending, c)
		default:
			base, ok := suitOffsets[c]
			if !ok {
				return nil, fmt.Errorf("unknown suit %q in %q", string(c), s)
			}
			if len(pending) == 0 {
				return nil, fmt.Errorf("suit %q with no ranks in %q", string(c), s)
			}
			for _, r := range pending {
				t, err := tileFor(base, c, r)
				if err != nil {
					return nil, err
				}
				tiles = append(tiles, t)
			}
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("dangling ranks %q in %q", pending, s)
	}
	return tiles, nil
}

func tileFor(base Tile, suit, rank byte) (Tile, error) {
	if rank == '0' {
		switch suit {
		case 'm':
			return AkaManzu5, nil
		case 'p':
			return AkaPinzu5, nil
		case 's':
			return AkaSozu5, nil
		}
		return Null, fmt.Errorf("red five not defined for suit %q", string(suit))
	}
	n := Tile(rank - '1')
	if suit == 'z' && n > 6 {
		return Null, fmt.Errorf("honor rank out of range: %c%c", rank, suit)
	}
	return base + n, nil
}

// FormatMany renders tiles as a grouped string, the inverse of ParseMany.
// Tiles are emitted in the given order; consecutive tiles of one suit share
// a group.
func FormatMany(tiles []Tile) string {
	var sb strings.Builder
	var group []byte
	var groupSuit byte
	flush := func() {
		if len(group) > 0 {
			sb.Write(group)
			sb.WriteByte(groupSuit)
			group = group[:0]
		}
	}
	for _, t := range tiles {
		if !t.IsValid() {
			continue
		}
		var suit byte
		var rank byte
		switch {
		case t.IsAka():
			suit = "mps"[t.Normalize().Suit()]
			rank = '0'
		case t.IsHonor():
			suit = 'z'
			rank = byte('1' + int(t-Ton))
		default:
			suit = "mps"[t.Suit()]
			rank = byte('0' + t.Number())
		}
		if suit != groupSuit {
			flush()
			groupSuit = suit
		}
		group = append(group, rank)
	}
	flush()
	return sb.String()
}
