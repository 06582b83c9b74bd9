//go:build arm64

package shishua

import "golang.org/x/sys/cpu"

const (
	feature128 = "ASIMD"
	feature256 = "AVX2 (not available on arm64)"
)

// arm64 has no 256-bit integer tier; NEON covers the 128-bit engine.
func detectCPUFeatures() {
	hasVector128 = cpu.ARM64.HasASIMD
	hasVector256 = false
}
