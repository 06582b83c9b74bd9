package shishua

import "encoding/binary"

// Vector256Generator is the 256-bit engine: one register per double-lane.
// A Vector256Generator is not safe for concurrent use.
type Vector256Generator struct {
	state   [4]vec256
	output  [4]vec256
	counter vec256
}

var increment256 = vec256(counterIncrement)

// NewVector256 returns a 256-bit engine seeded with seed, or an
// *UnsupportedError if the host lacks the required SIMD tier.
func NewVector256(seed Seed) (*Vector256Generator, error) {
	if !hasVector256 {
		return nil, &UnsupportedError{Engine: Engine256, Feature: feature256}
	}
	return newVector256(seed), nil
}

func newVector256(seed Seed) *Vector256Generator {
	g := &Vector256Generator{}
	w := seedWords(seed)
	for k := range g.state {
		g.state[k] = vec256{w[4*k], w[4*k+1], w[4*k+2], w[4*k+3]}
	}

	traceSeparator("vector256 diffusion")
	diffuse(g.round, func() {
		g.state[0], g.state[1], g.state[2], g.state[3] =
			g.output[3], g.output[2], g.output[1], g.output[0]
	})
	traceState("vector256 seeded", g.words())

	return g
}

// Engine returns Engine256.
func (g *Vector256Generator) Engine() Engine { return Engine256 }

// Generate produces size bytes of the stream into dst. A zero-length dst
// advances the stream by size bytes without writing anything.
func (g *Vector256Generator) Generate(dst []byte, size int) error {
	if err := checkRequest(dst, size); err != nil {
		return err
	}

	for i := 0; i < size; i += BlockSize {
		if len(dst) != 0 {
			block := dst[i : i+BlockSize]
			for k, o := range g.output {
				for j, w := range o {
					binary.LittleEndian.PutUint64(block[k*32+j*8:], w)
				}
			}
		}
		g.round()
	}
	return nil
}

// Fill fills dst, whose length must be a positive multiple of BlockSize.
func (g *Vector256Generator) Fill(dst []byte) error {
	return g.Generate(dst, len(dst))
}

func (g *Vector256Generator) round() {
	s0, s1, s2, s3 := g.state[0], g.state[1], g.state[2], g.state[3]

	s1 = s1.add(g.counter)
	s3 = s3.add(g.counter)
	g.counter = g.counter.add(increment256)

	u0, u1, u2, u3 := s0.shr(1), s1.shr(3), s2.shr(1), s3.shr(3)
	t0 := s0.permute(&permuteA)
	t1 := s1.permute(&permuteB)
	t2 := s2.permute(&permuteA)
	t3 := s3.permute(&permuteB)

	s0, s1, s2, s3 = t0.add(u0), t1.add(u1), t2.add(u2), t3.add(u3)

	g.state = [4]vec256{s0, s1, s2, s3}
	g.output = [4]vec256{u0.xor(t1), u2.xor(t3), s0.xor(s3), s2.xor(s1)}
}

func (g *Vector256Generator) words() stateWords {
	var w stateWords
	for k := 0; k < 4; k++ {
		copy(w.state[4*k:4*k+4], g.state[k][:])
		copy(w.output[4*k:4*k+4], g.output[k][:])
	}
	w.counter = [4]uint64(g.counter)
	return w
}
