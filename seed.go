package shishua

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opd-ai/go-shishua/internal/seedkdf"
)

// String formats the seed as four comma-separated hex words, the form
// accepted by ParseSeed.
func (s Seed) String() string {
	return fmt.Sprintf("%#x,%#x,%#x,%#x", s[0], s[1], s[2], s[3])
}

// ParseSeed parses one to four comma-separated unsigned words. Words may be
// hex (0x prefix), octal (0 prefix) or decimal. Missing trailing words are
// zero.
func ParseSeed(text string) (Seed, error) {
	var seed Seed

	parts := strings.Split(text, ",")
	if len(parts) > len(seed) {
		return Seed{}, fmt.Errorf("shishua: seed has %d words, at most %d allowed", len(parts), len(seed))
	}

	for i, p := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(p), 0, 64)
		if err != nil {
			return Seed{}, fmt.Errorf("shishua: invalid seed word %d: %w", i, err)
		}
		seed[i] = w
	}
	return seed, nil
}

// SeedFromBytes derives a seed from arbitrary data with BLAKE2b-256.
func SeedFromBytes(data []byte) Seed {
	return Seed(seedkdf.FromBytes(data))
}

// SeedFromPassphrase derives a seed from a passphrase and salt with Argon2id
// using the seedkdf default cost parameters.
func SeedFromPassphrase(passphrase, salt []byte) Seed {
	return Seed(seedkdf.FromPassphrase(passphrase, seedkdf.DefaultArgon2Config(salt)))
}
