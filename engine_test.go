package shishua

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEngines = []Engine{EngineScalar, Engine128, Engine256}

// engineUnderTest exposes the canonical word view next to Generator.
type engineUnderTest interface {
	Generator
	words() stateWords
}

// newUnchecked builds any engine without the host capability check, so the
// vector engines are exercised on every CI machine.
func newUnchecked(e Engine, seed Seed) engineUnderTest {
	switch e {
	case EngineScalar:
		return NewScalar(seed)
	case Engine128:
		return newVector128(seed)
	case Engine256:
		return newVector256(seed)
	}
	panic(fmt.Sprintf("unknown engine %v", e))
}

// probeSeeds covers the boundary seeds plus a spread of derived ones.
func probeSeeds() []Seed {
	seeds := []Seed{
		{},
		{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)},
		{1, 0, 0, 0},
		{0, 0, 0, 1 << 63},
		{0x123456789101112, 0xB00B135, 0x1337D1CC00000000, 0x69420},
		{0xDEADBEEF, 0x69420, 0x123456789101112, 0x13371337},
	}
	for i := 0; i < 16; i++ {
		seeds = append(seeds, SeedFromBytes([]byte(fmt.Sprintf("probe-%d", i))))
	}
	return seeds
}

func TestEnginesAgreeOnStateWords(t *testing.T) {
	for _, seed := range probeSeeds() {
		gens := make([]engineUnderTest, len(allEngines))
		for i, e := range allEngines {
			gens[i] = newUnchecked(e, seed)
		}

		for step := 0; step < 20; step++ {
			want := gens[0].words()
			for _, g := range gens[1:] {
				require.Equal(t, want, g.words(), "seed %v, step %d, engine %s", seed, step, g.Engine())
			}
			for _, g := range gens {
				require.NoError(t, g.Generate(nil, BlockSize))
			}
		}
	}
}

func TestEnginesAgreeOnBytes(t *testing.T) {
	for _, seed := range probeSeeds() {
		for _, size := range []int{BlockSize, 2 * BlockSize, 17 * BlockSize} {
			var want []byte
			for _, e := range allEngines {
				got := make([]byte, size)
				require.NoError(t, newUnchecked(e, seed).Fill(got))
				if want == nil {
					want = got
					continue
				}
				require.True(t, bytes.Equal(want, got), "seed %v, size %d, engine %s", seed, size, e)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	seed := SeedFromBytes([]byte("determinism"))
	for _, e := range allEngines {
		t.Run(e.String(), func(t *testing.T) {
			a, b := newUnchecked(e, seed), newUnchecked(e, seed)
			for _, size := range []int{128, 512, 128, 1024} {
				bufA, bufB := make([]byte, size), make([]byte, size)
				require.NoError(t, a.Fill(bufA))
				require.NoError(t, b.Fill(bufB))
				assert.Equal(t, bufA, bufB)
			}
		})
	}
}

func TestChunkingInvariance(t *testing.T) {
	seed := SeedFromBytes([]byte("chunking"))
	const total = 20 * BlockSize

	for _, e := range allEngines {
		t.Run(e.String(), func(t *testing.T) {
			whole := make([]byte, total)
			require.NoError(t, newUnchecked(e, seed).Fill(whole))

			for _, blocks := range [][]int{{1, 19}, {5, 5, 10}, {3, 1, 4, 1, 5, 6}} {
				g := newUnchecked(e, seed)
				var pieces []byte
				for _, n := range blocks {
					buf := make([]byte, n*BlockSize)
					require.NoError(t, g.Fill(buf))
					pieces = append(pieces, buf...)
				}
				assert.Equal(t, whole, pieces, "split %v", blocks)
			}
		})
	}
}

func TestDiscardAdvancesStream(t *testing.T) {
	seed := SeedFromBytes([]byte("discard"))
	for _, e := range allEngines {
		t.Run(e.String(), func(t *testing.T) {
			whole := make([]byte, 4*BlockSize)
			require.NoError(t, newUnchecked(e, seed).Fill(whole))

			g := newUnchecked(e, seed)
			require.NoError(t, g.Generate(nil, 3*BlockSize))
			tail := make([]byte, BlockSize)
			require.NoError(t, g.Fill(tail))
			assert.Equal(t, whole[3*BlockSize:], tail)

			// An empty, non-nil buffer also means discard.
			g = newUnchecked(e, seed)
			require.NoError(t, g.Generate([]byte{}, 3*BlockSize))
			require.NoError(t, g.Fill(tail))
			assert.Equal(t, whole[3*BlockSize:], tail)
		})
	}
}

func TestSeedSensitivity(t *testing.T) {
	seeds := probeSeeds()
	first := make(map[[BlockSize]byte]Seed, len(seeds))

	for _, seed := range seeds {
		var block [BlockSize]byte
		require.NoError(t, NewScalar(seed).Fill(block[:]))
		if prev, dup := first[block]; dup {
			t.Fatalf("seeds %v and %v produce the same first block", prev, seed)
		}
		first[block] = seed
	}
}

func TestSeedSensitivity_SingleBitFlips(t *testing.T) {
	base := Seed{}
	var ref [BlockSize]byte
	require.NoError(t, NewScalar(base).Fill(ref[:]))

	for word := 0; word < 4; word++ {
		for _, bit := range []uint{0, 31, 32, 63} {
			s := base
			s[word] ^= 1 << bit
			var got [BlockSize]byte
			require.NoError(t, NewScalar(s).Fill(got[:]))
			assert.NotEqual(t, ref, got, "flipping word %d bit %d left the first block unchanged", word, bit)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		dst     []byte
		size    int
		wantErr error
	}{
		{"buffer of 100", make([]byte, 100), 100, ErrInvalidSize},
		{"buffer 128 size 256", make([]byte, 128), 256, ErrBufferLength},
		{"buffer 256 size 128", make([]byte, 256), 128, ErrBufferLength},
		{"zero size", nil, 0, ErrInvalidSize},
		{"negative size", nil, -128, ErrInvalidSize},
		{"discard 100", nil, 100, ErrInvalidSize},
		{"unaligned buffer and size", make([]byte, 129), 129, ErrInvalidSize},
	}

	for _, e := range allEngines {
		for _, tt := range tests {
			t.Run(e.String()+"/"+tt.name, func(t *testing.T) {
				g := newUnchecked(e, Seed{1, 2, 3, 4})
				before := g.words()

				err := g.Generate(tt.dst, tt.size)
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.Equal(t, before, g.words(), "rejected request must not mutate state")
				for _, b := range tt.dst {
					require.Zero(t, b, "rejected request must not write output")
				}
			})
		}
	}
}

func TestFillRejectsUnalignedBuffer(t *testing.T) {
	for _, e := range allEngines {
		err := newUnchecked(e, Seed{}).Fill(make([]byte, 100))
		assert.ErrorIs(t, err, ErrInvalidSize, e.String())
	}
}

func TestOutputIsLittleEndian(t *testing.T) {
	g := NewScalar(Seed{5, 6, 7, 8})
	pending := g.words().output

	buf := make([]byte, BlockSize)
	require.NoError(t, g.Fill(buf))

	for j, w := range pending {
		assert.Equal(t, w, binary.LittleEndian.Uint64(buf[j*8:]), "word %d", j)
	}
}

func TestInitialCounterAfterDiffusion(t *testing.T) {
	// Thirteen diffusion rounds each advance the counter once.
	want := [4]uint64{13 * 7, 13 * 5, 13 * 3, 13 * 1}
	for _, e := range allEngines {
		assert.Equal(t, want, newUnchecked(e, Seed{9}).words().counter, e.String())
	}
}

func TestSeedWords(t *testing.T) {
	seed := Seed{0x11, 0x22, 0x33, 0x44}
	w := seedWords(seed)

	xored := map[int]uint64{0: 0x11, 2: 0x22, 4: 0x33, 6: 0x44, 8: 0x33, 10: 0x44, 12: 0x11, 14: 0x22}
	for i := range w {
		want := phi[i] ^ xored[i]
		assert.Equal(t, want, w[i], "word %d", i)
	}
}

func BenchmarkGenerate(b *testing.B) {
	for _, e := range allEngines {
		b.Run(e.String(), func(b *testing.B) {
			g := newUnchecked(e, Seed{1, 2, 3, 4})
			buf := make([]byte, 4096)
			b.SetBytes(int64(len(buf)))
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_ = g.Fill(buf)
			}
		})
	}
}
