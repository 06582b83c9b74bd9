package shishua

import "encoding/binary"

// Vector128Generator is the 128-bit engine. Each 256-bit double-lane lives
// in two registers: double-lane k is state[2k] (low half) and state[2k+1]
// (high half). Permutations across the full double-lane are realized with
// byte alignment over the register pair.
//
// A Vector128Generator is not safe for concurrent use.
type Vector128Generator struct {
	state     [8]vec128
	output    [8]vec128
	counterLo vec128
	counterHi vec128
}

var (
	incrementLo = vec128{counterIncrement[0], counterIncrement[1]}
	incrementHi = vec128{counterIncrement[2], counterIncrement[3]}
)

// NewVector128 returns a 128-bit engine seeded with seed, or an
// *UnsupportedError if the host lacks the required SIMD tier.
func NewVector128(seed Seed) (*Vector128Generator, error) {
	if !hasVector128 {
		return nil, &UnsupportedError{Engine: Engine128, Feature: feature128}
	}
	return newVector128(seed), nil
}

func newVector128(seed Seed) *Vector128Generator {
	g := &Vector128Generator{}
	w := seedWords(seed)
	for i := range g.state {
		g.state[i] = vec128{w[2*i], w[2*i+1]}
	}

	traceSeparator("vector128 diffusion")
	diffuse(g.round, func() {
		g.state[0], g.state[1] = g.output[6], g.output[7]
		g.state[2], g.state[3] = g.output[4], g.output[5]
		g.state[4], g.state[5] = g.output[2], g.output[3]
		g.state[6], g.state[7] = g.output[0], g.output[1]
	})
	traceState("vector128 seeded", g.words())

	return g
}

// Engine returns Engine128.
func (g *Vector128Generator) Engine() Engine { return Engine128 }

// Generate produces size bytes of the stream into dst. A zero-length dst
// advances the stream by size bytes without writing anything.
func (g *Vector128Generator) Generate(dst []byte, size int) error {
	if err := checkRequest(dst, size); err != nil {
		return err
	}

	for i := 0; i < size; i += BlockSize {
		if len(dst) != 0 {
			block := dst[i : i+BlockSize]
			for j, o := range g.output {
				binary.LittleEndian.PutUint64(block[j*16:], o[0])
				binary.LittleEndian.PutUint64(block[j*16+8:], o[1])
			}
		}
		g.round()
	}
	return nil
}

// Fill fills dst, whose length must be a positive multiple of BlockSize.
func (g *Vector128Generator) Fill(dst []byte) error {
	return g.Generate(dst, len(dst))
}

func (g *Vector128Generator) round() {
	g.lanePair(0)
	g.lanePair(4)

	g.output[4] = g.state[0].xor(g.state[6])
	g.output[5] = g.state[1].xor(g.state[7])
	g.output[6] = g.state[4].xor(g.state[2])
	g.output[7] = g.state[5].xor(g.state[3])

	g.counterLo = g.counterLo.add(incrementLo)
	g.counterHi = g.counterHi.add(incrementHi)
}

// lanePair updates the two double-lanes starting at register b (0 or 4):
// the first takes >>1 and permuteA, the second takes the counter, >>3 and
// permuteB. Their mixed output lands in output[b/2] and output[b/2+1].
func (g *Vector128Generator) lanePair(b int) {
	sLo, sHi := g.state[b], g.state[b+1]
	u0Lo, u0Hi := sLo.shr(1), sHi.shr(1)
	tLo, tHi := permuteA128(sLo, sHi)
	g.state[b] = tLo.add(u0Lo)
	g.state[b+1] = tHi.add(u0Hi)

	sLo = g.state[b+2].add(g.counterLo)
	sHi = g.state[b+3].add(g.counterHi)
	u1Lo, u1Hi := sLo.shr(3), sHi.shr(3)
	tLo, tHi = permuteB128(sLo, sHi)
	g.state[b+2] = tLo.add(u1Lo)
	g.state[b+3] = tHi.add(u1Hi)

	g.output[b/2] = u0Lo.xor(tLo)
	g.output[b/2+1] = u0Hi.xor(tHi)
}

func (g *Vector128Generator) words() stateWords {
	var w stateWords
	for i := range g.state {
		w.state[2*i], w.state[2*i+1] = g.state[i][0], g.state[i][1]
		w.output[2*i], w.output[2*i+1] = g.output[i][0], g.output[i][1]
	}
	w.counter = [4]uint64{g.counterLo[0], g.counterLo[1], g.counterHi[0], g.counterHi[1]}
	return w
}
