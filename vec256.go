package shishua

// vec256 is a 256-bit register holding four 64-bit lanes, lane 0 least
// significant. Its methods mirror the AVX2 integer operations the 256-bit
// engine is written against.
type vec256 [4]uint64

// add is VPADDQ.
func (a vec256) add(b vec256) vec256 {
	return vec256{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// shr is VPSRLQ.
func (a vec256) shr(n uint) vec256 {
	return vec256{a[0] >> n, a[1] >> n, a[2] >> n, a[3] >> n}
}

// xor is VPXOR.
func (a vec256) xor(b vec256) vec256 {
	return vec256{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// half returns 32-bit half-word i (0..7) of a.
func (a vec256) half(i uint8) uint64 {
	return (a[i>>1] >> (32 * uint(i&1))) & 0xFFFFFFFF
}

// permute is VPERMD: half-word i of the result is half-word table[i] of a.
func (a vec256) permute(table *[8]uint8) vec256 {
	var out vec256
	for i := range out {
		out[i] = a.half(table[2*i]) | a.half(table[2*i+1])<<32
	}
	return out
}
