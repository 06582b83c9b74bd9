package shishua

// vec128 is a 128-bit register holding two 64-bit lanes, lane 0 least
// significant. Its methods mirror the SSE2/SSSE3 integer operations the
// 128-bit engine is written against.
type vec128 [2]uint64

// add is PADDQ: lane-wise addition with wraparound.
func (a vec128) add(b vec128) vec128 {
	return vec128{a[0] + b[0], a[1] + b[1]}
}

// shr is PSRLQ: lane-wise logical right shift.
func (a vec128) shr(n uint) vec128 {
	return vec128{a[0] >> n, a[1] >> n}
}

// xor is PXOR.
func (a vec128) xor(b vec128) vec128 {
	return vec128{a[0] ^ b[0], a[1] ^ b[1]}
}

// alignr is PALIGNR: the 256-bit concatenation hi:lo shifted right by n
// bytes, truncated to its low 128 bits. n ranges over 0..32.
func alignr(hi, lo vec128, n uint) vec128 {
	w := [4]uint64{lo[0], lo[1], hi[0], hi[1]}
	word := func(i uint) uint64 {
		if i < 4 {
			return w[i]
		}
		return 0
	}

	q, r := n/8, (n%8)*8
	// A shift count of 64 yields zero, so r == 0 needs no special case.
	return vec128{
		word(q)>>r | word(q+1)<<(64-r),
		word(q+1)>>r | word(q+2)<<(64-r),
	}
}

// permuteA128 applies permuteA to the double-lane held in (lo, hi). The
// result's low half is half-words 5,6,7,0 and its high half 1,2,3,4, which
// is a 4-byte alignment of the register pair taken in both orders.
func permuteA128(lo, hi vec128) (vec128, vec128) {
	return alignr(lo, hi, 4), alignr(hi, lo, 4)
}

// permuteB128 applies permuteB to the double-lane held in (lo, hi): half-words
// 3,4,5,6 and 7,0,1,2, a 12-byte alignment.
func permuteB128(lo, hi vec128) (vec128, vec128) {
	return alignr(hi, lo, 12), alignr(lo, hi, 12)
}
