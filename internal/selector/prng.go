// internal/selector/prng.go
//
// Seed derivation and the seeded generator behind StableShuffle.
// Both are bit-compatible with the browser client so a server and a
// client given the same salt produce the same permutation.

package selector

import "unicode/utf16"

// Seed folds salt into a 32-bit seed (xmur3-style multiply/rotate mix).
// Characters are consumed as UTF-16 code units, matching the client.
func Seed(salt string) uint32 {
	units := utf16.Encode([]rune(salt))
	h := uint32(1779033703) ^ uint32(len(units))
	for _, c := range units {
		h = (h ^ uint32(c)) * 3432918353
		h = h<<13 | h>>19
	}
	return h
}

// Mulberry32 is a 32-bit seeded generator. Its state is owned by a single
// shuffle and never shared.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 returns a generator positioned before its first draw.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the generator and returns the next raw value.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns the next value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296
}
