package shishua

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// TestVector is a single pinned slice of a SHISHUA stream. Every engine must
// reproduce Expected exactly after discarding Skip bytes.
type TestVector struct {
	Name     string   `json:"name"`
	Engine   string   `json:"engine,omitempty"` // Empty means every engine
	Seed     []string `json:"seed"`             // Four hex words
	Length   int      `json:"length"`           // Bytes in Expected
	Skip     int      `json:"skip,omitempty"`   // Bytes discarded first
	Expected string   `json:"expected"`         // Hex-encoded output
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
//
// This is used internally for testing but exported for potential external validation tools.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetSeed returns the decoded seed of a test vector.
func (tv *TestVector) GetSeed() (Seed, error) {
	var seed Seed
	if len(tv.Seed) != len(seed) {
		return Seed{}, fmt.Errorf("seed must have %d words, got %d", len(seed), len(tv.Seed))
	}
	for i, s := range tv.Seed {
		w, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return Seed{}, fmt.Errorf("invalid seed word %d: %w", i, err)
		}
		seed[i] = w
	}
	return seed, nil
}

// GetExpected returns the decoded expected bytes.
func (tv *TestVector) GetExpected() ([]byte, error) {
	expected, err := hex.DecodeString(tv.Expected)
	if err != nil {
		return nil, fmt.Errorf("invalid expected output: %w", err)
	}
	if len(expected) != tv.Length {
		return nil, fmt.Errorf("expected output must be %d bytes, got %d", tv.Length, len(expected))
	}
	return expected, nil
}

// GetEngines returns the engines this vector applies to.
func (tv *TestVector) GetEngines() ([]Engine, error) {
	if tv.Engine == "" {
		return []Engine{EngineScalar, Engine128, Engine256}, nil
	}
	e, err := ParseEngine(tv.Engine)
	if err != nil {
		return nil, err
	}
	return []Engine{e}, nil
}

// Run regenerates the vector's bytes with g, which must be freshly seeded
// with the vector's seed.
func (tv *TestVector) Run(g Generator) ([]byte, error) {
	if tv.Skip > 0 {
		if err := g.Generate(nil, tv.Skip); err != nil {
			return nil, fmt.Errorf("skip: %w", err)
		}
	}
	out := make([]byte, tv.Length)
	if err := g.Fill(out); err != nil {
		return nil, err
	}
	return out, nil
}
