package cave

// CaveRand reproduces the 8-bit pseudo-random generator the original cave
// format was authored against. Every cave layout depends on it bit for bit,
// so it must never be swapped for math/rand.
type CaveRand struct {
	seed1 uint8
	seed2 uint8
}

// NewCaveRand creates a generator with the given seed pair.
// Cave decoding always starts from (0, seed).
func NewCaveRand(seed1, seed2 uint8) *CaveRand {
	return &CaveRand{seed1: seed1, seed2: seed2}
}

// Seeds returns the current state pair.
func (r *CaveRand) Seeds() (uint8, uint8) {
	return r.seed1, r.seed2
}

// Next advances the state and returns the new seed1, which the decoder
// compares against the random-fill thresholds.
func (r *CaveRand) Next() uint8 {
	temp1 := uint16(r.seed1&1) * 0x80
	temp2 := uint16(r.seed2>>1) & 0x7F

	result := uint16(r.seed2) + uint16(r.seed2&1)*0x80
	carry := result >> 8
	result &= 0xFF

	result = result + carry + 0x13
	carry = result >> 8
	r.seed2 = uint8(result)

	result = uint16(r.seed1) + carry + temp1
	carry = result >> 8
	result &= 0xFF

	r.seed1 = uint8(result + carry + temp2)
	return r.seed1
}
