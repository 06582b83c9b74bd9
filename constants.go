package shishua

// BlockSize is the number of bytes produced by one application of the round
// function. Every generation request must be a positive multiple of it.
const BlockSize = 128

// diffusionRounds is the number of discarded rounds run at seeding time.
const diffusionRounds = 13

// phi holds the binary expansion of the golden ratio. It is the starting
// working state of every engine; changing any word yields a different stream.
var phi = [16]uint64{
	0x9E3779B97F4A7C15, 0xF39CC0605CEDC834, 0x1082276BF3A27251, 0xF86C6A11D0C18E95,
	0x2767F0B153D27B7F, 0x0347045B5BF1827F, 0x01886F0928403002, 0xC1D64BA40F335E36,
	0xF06AD7AE9717877E, 0x85839D6EFFBD7DC6, 0x64D325D1C5371682, 0xCADD0CCCFDFFBBE1,
	0x626E33B8D04B4331, 0xBBF73C790D94F79D, 0x471C4AB3ED3D82A5, 0xFEC507705E4AE6E5,
}

// counterIncrement is added to the four logical counter words after every block.
var counterIncrement = [4]uint64{7, 5, 3, 1}

// Destination-index tables over the eight 32-bit half-words of a double-lane:
// half-word i of the result is half-word table[i] of the source.
// permuteA rotates by three positions and drives double-lanes 0 and 2,
// permuteB rotates by five and drives double-lanes 1 and 3.
var (
	permuteA = [8]uint8{5, 6, 7, 0, 1, 2, 3, 4}
	permuteB = [8]uint8{3, 4, 5, 6, 7, 0, 1, 2}
)

// Seed is the 256-bit generator seed, as four 64-bit words.
type Seed [4]uint64

// seedWords returns the initial working state for seed: the phi constants with
// the seed XORed into the even word of every 128-bit half. The odd words stay
// untouched so the caller never controls a full double-lane.
func seedWords(seed Seed) [16]uint64 {
	w := phi
	w[0] ^= seed[0]
	w[2] ^= seed[1]
	w[4] ^= seed[2]
	w[6] ^= seed[3]
	w[8] ^= seed[2]
	w[10] ^= seed[3]
	w[12] ^= seed[0]
	w[14] ^= seed[1]
	return w
}

// stateWords is the canonical 64-bit view of a generator state. Double-lane k
// occupies words 4k..4k+3 of state and output. Every engine reduces to this
// layout, which is what the cross-engine tests compare.
type stateWords struct {
	state   [16]uint64
	output  [16]uint64
	counter [4]uint64
}

// diffuse runs the seeding rounds. round must produce exactly one block into
// the pending output without writing it anywhere; reassign must load the
// working state from the pending output in reverse double-lane order.
func diffuse(round func(), reassign func()) {
	for i := 0; i < diffusionRounds; i++ {
		round()
		reassign()
	}
}
