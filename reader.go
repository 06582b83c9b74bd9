package shishua

import (
	"encoding/binary"
	"io"
)

// readerBlocks is how many blocks a Reader pulls from its generator at once.
const readerBlocks = 8

// Reader adapts a Generator to io.Reader, serving reads of any length from
// whole blocks buffered internally. The bytes it returns are exactly the
// generator's stream, so the split of reads never changes the sequence.
//
// A Reader takes ownership of its generator; do not call the generator
// directly afterwards. A Reader is not safe for concurrent use.
type Reader struct {
	gen Generator
	buf [readerBlocks * BlockSize]byte
	pos int
}

var _ io.Reader = (*Reader)(nil)

// NewReader returns a Reader drawing from g.
func NewReader(g Generator) *Reader {
	return &Reader{gen: g, pos: readerBlocks * BlockSize}
}

// Read fills p with the next len(p) bytes of the stream. It always returns
// len(p) unless the generator fails.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		// Large aligned requests bypass the buffer.
		if r.pos == len(r.buf) && len(p)-n >= BlockSize {
			direct := (len(p) - n) / BlockSize * BlockSize
			if err := r.gen.Generate(p[n:n+direct], direct); err != nil {
				return n, err
			}
			n += direct
			continue
		}
		if r.pos == len(r.buf) {
			if err := r.refill(); err != nil {
				return n, err
			}
		}
		c := copy(p[n:], r.buf[r.pos:])
		r.pos += c
		n += c
	}
	return n, nil
}

// Uint64 returns the next eight bytes of the stream as a little-endian word.
func (r *Reader) Uint64() uint64 {
	var b [8]byte
	if _, err := r.Read(b[:]); err != nil {
		// Generate only fails on malformed requests, which Read never makes.
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

func (r *Reader) refill() error {
	if err := r.gen.Fill(r.buf[:]); err != nil {
		return err
	}
	r.pos = 0
	traceBytes("reader refill head", r.buf[:BlockSize])
	return nil
}
