//go:build !amd64 && !arm64

package shishua

const (
	feature128 = "SSE2 or ASIMD"
	feature256 = "AVX2"
)

// Other architectures fall back to the scalar engine only.
func detectCPUFeatures() {
	hasVector128 = false
	hasVector256 = false
}
