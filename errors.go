package shishua

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested byte count is not a
	// positive multiple of BlockSize.
	ErrInvalidSize = errors.New("shishua: size must be a positive multiple of 128")

	// ErrBufferLength is returned when a destination buffer is supplied and
	// its length differs from the requested byte count.
	ErrBufferLength = errors.New("shishua: buffer length must equal size")

	// ErrUnsupported is matched by every *UnsupportedError.
	ErrUnsupported = errors.New("shishua: engine not supported on this host")
)

// UnsupportedError reports that the host lacks the instruction set an engine
// requires. It is only ever returned at construction time.
type UnsupportedError struct {
	Engine  Engine
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("shishua: %s engine requires %s", e.Engine, e.Feature)
}

// Is makes errors.Is(err, ErrUnsupported) succeed.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// checkRequest validates a generation request before any state is touched.
func checkRequest(dst []byte, size int) error {
	if size <= 0 || size%BlockSize != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if len(dst) != 0 && len(dst) != size {
		return fmt.Errorf("%w: len(dst) = %d, size = %d", ErrBufferLength, len(dst), size)
	}
	return nil
}
