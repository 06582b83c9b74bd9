//go:build amd64

package shishua

import "golang.org/x/sys/cpu"

const (
	feature128 = "SSE2"
	feature256 = "AVX2"
)

func detectCPUFeatures() {
	hasVector128 = cpu.X86.HasSSE2
	hasVector256 = cpu.X86.HasAVX && cpu.X86.HasAVX2
}
