// Package seedkdf derives 256-bit generator seeds from arbitrary input.
// This package wraps golang.org/x/crypto.
package seedkdf

import (
	"encoding/binary"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

// FromBytes hashes data with BLAKE2b-256 and returns the digest as four
// little-endian words.
func FromBytes(data []byte) [4]uint64 {
	sum := blake2b.Sum256(data)
	return words(sum[:])
}

// FromKeyedBytes is FromBytes with a BLAKE2b key, for domain separation
// between independent streams derived from the same data.
func FromKeyedBytes(data, key []byte) ([4]uint64, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return [4]uint64{}, err
	}
	h.Write(data)
	return words(h.Sum(nil)), nil
}

// Argon2Config specifies Argon2id parameters for passphrase derivation.
type Argon2Config struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory in KiB
	Threads uint8  // Parallelism factor
	Salt    []byte // Salt value
}

// DefaultArgon2Config returns the parameters recommended by the argon2
// package documentation for interactive use.
func DefaultArgon2Config(salt []byte) Argon2Config {
	return Argon2Config{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		Salt:    salt,
	}
}

// FromPassphrase stretches a passphrase into a seed with Argon2id.
func FromPassphrase(passphrase []byte, config Argon2Config) [4]uint64 {
	key := argon2.IDKey(passphrase, config.Salt, config.Time, config.Memory, config.Threads, 32)
	return words(key)
}

func words(b []byte) [4]uint64 {
	var w [4]uint64
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return w
}
