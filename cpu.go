package shishua

import "os"

// noSIMD disables both vector tiers when SHISHUA_NOSIMD=1, regardless of
// what the host reports.
var noSIMD = os.Getenv("SHISHUA_NOSIMD") == "1"

// Host capability, resolved once at package init by the per-architecture
// detectCPUFeatures.
var (
	hasVector128 bool
	hasVector256 bool
)

func init() {
	if noSIMD {
		traceLog("SHISHUA_NOSIMD set, vector engines disabled")
		return
	}
	detectCPUFeatures()
	traceLog("cpu features: vector128=%v vector256=%v", hasVector128, hasVector256)
}

// Supported reports whether the host can run engine e.
func Supported(e Engine) bool {
	switch e {
	case EngineScalar:
		return true
	case Engine128:
		return hasVector128
	case Engine256:
		return hasVector256
	default:
		return false
	}
}

// Best returns the widest engine the host supports.
func Best() Engine {
	switch {
	case hasVector256:
		return Engine256
	case hasVector128:
		return Engine128
	default:
		return EngineScalar
	}
}
