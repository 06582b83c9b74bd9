// Package shishua provides a pure-Go implementation of the SHISHUA
// pseudo-random byte generator.
//
// SHISHUA expands a 256-bit seed into an unbounded, deterministic byte
// stream. It is fast and statistically strong but NOT cryptographically
// secure; use crypto/rand for keys, nonces and tokens.
//
// Three engines compute the same stream at different vector widths:
//
//   - EngineScalar works on plain 64-bit words and runs everywhere.
//   - Engine128 models 128-bit registers (SSE2 / NEON tier).
//   - Engine256 models 256-bit registers (AVX2 tier).
//
// For equal seeds all three produce byte-identical output. Vector engines
// refuse to construct on hosts without the matching instruction set; New
// with Config.Fallback set picks the next narrower engine instead.
//
// Example usage:
//
//	gen, err := shishua.New(shishua.Config{
//	    Engine:   shishua.Best(),
//	    Seed:     shishua.Seed{1, 2, 3, 4},
//	    Fallback: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	buf := make([]byte, 4096)
//	if err := gen.Fill(buf); err != nil {
//	    log.Fatal(err)
//	}
//
// Generators are not safe for concurrent use. Give each goroutine its own
// generator with a distinct seed.
package shishua

import (
	"errors"
	"fmt"
)

// Engine identifies one of the three realizations of the generator.
type Engine int

const (
	// EngineScalar is the portable 64-bit word engine.
	EngineScalar Engine = iota

	// Engine128 is the 128-bit vector engine.
	Engine128

	// Engine256 is the 256-bit vector engine.
	Engine256
)

// String returns the string representation of the engine.
func (e Engine) String() string {
	switch e {
	case EngineScalar:
		return "scalar"
	case Engine128:
		return "vector128"
	case Engine256:
		return "vector256"
	default:
		return fmt.Sprintf("Engine(%d)", e)
	}
}

// ParseEngine is the inverse of Engine.String.
func ParseEngine(s string) (Engine, error) {
	switch s {
	case "scalar":
		return EngineScalar, nil
	case "vector128":
		return Engine128, nil
	case "vector256":
		return Engine256, nil
	default:
		return 0, fmt.Errorf("shishua: unknown engine: %q", s)
	}
}

// Generator is the behaviour shared by all engines.
type Generator interface {
	// Generate writes size bytes of the stream to dst, or only advances the
	// stream when dst is empty. size must be a positive multiple of
	// BlockSize and, if dst is not empty, equal to len(dst).
	Generate(dst []byte, size int) error

	// Fill is Generate(dst, len(dst)).
	Fill(dst []byte) error

	// Engine reports which engine produced the generator.
	Engine() Engine
}

var (
	_ Generator = (*ScalarGenerator)(nil)
	_ Generator = (*Vector128Generator)(nil)
	_ Generator = (*Vector256Generator)(nil)
)

// Config specifies how New builds a generator.
type Config struct {
	// Engine is the requested engine.
	Engine Engine

	// Seed is the 256-bit seed.
	Seed Seed

	// Fallback allows New to degrade to a narrower engine when Engine is
	// not supported by the host. Without it an unsupported engine is an
	// error.
	Fallback bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Engine < EngineScalar || c.Engine > Engine256 {
		return fmt.Errorf("shishua: invalid engine: %v", c.Engine)
	}
	return nil
}

// New creates a seeded generator for the configured engine.
func New(config Config) (Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	for e := config.Engine; ; e-- {
		g, err := newEngine(e, config.Seed)
		if err == nil {
			if e != config.Engine {
				traceLog("engine %s unsupported, fell back to %s", config.Engine, e)
			}
			return g, nil
		}
		if !config.Fallback || !errors.Is(err, ErrUnsupported) || e == EngineScalar {
			return nil, err
		}
	}
}

func newEngine(e Engine, seed Seed) (Generator, error) {
	switch e {
	case EngineScalar:
		return NewScalar(seed), nil
	case Engine128:
		g, err := NewVector128(seed)
		if err != nil {
			return nil, err
		}
		return g, nil
	case Engine256:
		g, err := NewVector256(seed)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("shishua: invalid engine: %v", e)
	}
}
