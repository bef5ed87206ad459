package expval

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/tile"
)

// cacheKey identifies a search state: the hand, the remaining counts, and
// the regression budget. Hand and counts are hashed separately so a
// collision needs both fingerprints to coincide.
type cacheKey struct {
	hand   uint64
	counts uint64
	extra  int
}

// vecs is a memoized result: the three per-turn vectors.
type vecs struct {
	tenpai []float64
	win    []float64
	ev     []float64
}

type scoreKey struct {
	hand uint64
	win  tile.Tile
}

// fingerprintHand hashes the free-tile counts, red-five flags, and meld
// identities.
func fingerprintHand(h *hand.Hand) uint64 {
	var buf [tile.NumKinds + 1 + 4*5]byte
	counts := h.Counts()
	for i, c := range counts {
		buf[i] = byte(c)
	}
	var aka byte
	if h.AkaManzu5 {
		aka |= 1
	}
	if h.AkaPinzu5 {
		aka |= 2
	}
	if h.AkaSozu5 {
		aka |= 4
	}
	buf[tile.NumKinds] = aka
	n := tile.NumKinds + 1
	for _, m := range h.Melds() {
		buf[n] = byte(m.Type)
		n++
		for _, t := range m.Tiles {
			buf[n] = byte(t + 1)
			n++
		}
	}
	return xxhash.Sum64(buf[:n])
}

// fingerprintCounts hashes the 37-entry remaining-counts vector.
func fingerprintCounts(counts []int) uint64 {
	var buf [tile.NumKindsWithAka]byte
	for i, c := range counts {
		buf[i] = byte(c)
	}
	return xxhash.Sum64(buf[:])
}

func (c *Calculator) key(h *hand.Hand, counts []int, extra int) cacheKey {
	return cacheKey{
		hand:   fingerprintHand(h),
		counts: fingerprintCounts(counts),
		extra:  extra,
	}
}

func (c *Calculator) clearCache() {
	for i := range c.drawCache {
		c.drawCache[i] = make(map[cacheKey]vecs)
		c.discardCache[i] = make(map[cacheKey]vecs)
	}
	c.scoreCache = make(map[scoreKey][]int)
}

// fingerprintState combines the hand and counts hashes; the restoration
// invariant tests compare it before and after a search call.
func fingerprintState(h *hand.Hand, counts []int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], fingerprintHand(h))
	binary.LittleEndian.PutUint64(buf[8:], fingerprintCounts(counts))
	return xxhash.Sum64(buf[:])
}
