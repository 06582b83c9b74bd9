package shishua

import "encoding/binary"

// Source-word tables for the scalar permutation, one entry per result word of
// a pair of double-lanes (four words of the permuteA lane, then four of the
// permuteB lane). Result word k is
//
//	(s[scalarShuffleLo[k]] >> 32) | (s[scalarShuffleHi[k]] << 32)
//
// which is what permuteA/permuteB produce when read back as 64-bit words.
var (
	scalarShuffleLo = [8]uint8{2, 3, 0, 1, 5, 6, 7, 4}
	scalarShuffleHi = [8]uint8{3, 0, 1, 2, 6, 7, 4, 5}
)

// ScalarGenerator is the portable engine. It works on plain 64-bit words and
// has no hardware requirement. A ScalarGenerator is not safe for concurrent use.
type ScalarGenerator struct {
	state   [16]uint64
	output  [16]uint64
	counter [4]uint64
}

// NewScalar returns a scalar generator seeded with seed.
func NewScalar(seed Seed) *ScalarGenerator {
	g := &ScalarGenerator{state: seedWords(seed)}

	traceSeparator("scalar diffusion")
	diffuse(g.round, func() {
		for j := 0; j < 4; j++ {
			g.state[j+0] = g.output[j+12]
			g.state[j+4] = g.output[j+8]
			g.state[j+8] = g.output[j+4]
			g.state[j+12] = g.output[j+0]
		}
	})
	traceState("scalar seeded", g.words())

	return g
}

// Engine returns EngineScalar.
func (g *ScalarGenerator) Engine() Engine { return EngineScalar }

// Generate produces size bytes of the stream into dst. A zero-length dst
// advances the stream by size bytes without writing anything.
func (g *ScalarGenerator) Generate(dst []byte, size int) error {
	if err := checkRequest(dst, size); err != nil {
		return err
	}

	for i := 0; i < size; i += BlockSize {
		if len(dst) != 0 {
			block := dst[i : i+BlockSize]
			for j, w := range g.output {
				binary.LittleEndian.PutUint64(block[j*8:], w)
			}
		}
		g.round()
	}
	return nil
}

// Fill fills dst, whose length must be a positive multiple of BlockSize.
func (g *ScalarGenerator) Fill(dst []byte) error {
	return g.Generate(dst, len(dst))
}

// round computes the next pending block. The two halves of the state hold
// double-lanes (0, 1) and (2, 3); within a half the first four words take the
// >>1 shift and permuteA, the last four receive the counter, >>3 and permuteB.
func (g *ScalarGenerator) round() {
	var t [8]uint64

	for j := 0; j < 2; j++ {
		s := g.state[j*8 : j*8+8]
		o := g.output[j*4 : j*4+4]

		for k := 0; k < 4; k++ {
			s[k+4] += g.counter[k]
		}

		for k := 0; k < 8; k++ {
			t[k] = (s[scalarShuffleLo[k]] >> 32) | (s[scalarShuffleHi[k]] << 32)
		}

		for k := 0; k < 4; k++ {
			uLo := s[k] >> 1
			uHi := s[k+4] >> 3
			s[k] = uLo + t[k]
			s[k+4] = uHi + t[k+4]
			o[k] = uLo ^ t[k+4]
		}
	}

	for j := 0; j < 4; j++ {
		g.output[j+8] = g.state[j] ^ g.state[j+12]
		g.output[j+12] = g.state[j+8] ^ g.state[j+4]
		g.counter[j] += counterIncrement[j]
	}
}

func (g *ScalarGenerator) words() stateWords {
	return stateWords{state: g.state, output: g.output, counter: g.counter}
}
