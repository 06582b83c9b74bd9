package shishua

import (
	"encoding/hex"
	"fmt"
	"os"
)

// debugEnabled controls whether debug tracing is enabled via SHISHUA_DEBUG env var
var debugEnabled = os.Getenv("SHISHUA_DEBUG") == "1"

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Printf("[TRACE] "+format+"\n", args...)
	}
}

// traceBytes outputs bytes in hex format with a descriptive name
func traceBytes(name string, data []byte) {
	if debugEnabled {
		fmt.Printf("[TRACE] %s (%d bytes): %s\n", name, len(data), hex.EncodeToString(data))
	}
}

// traceDoubleLanes outputs a 16-word block as four double-lanes
func traceDoubleLanes(name string, words [16]uint64) {
	if debugEnabled {
		fmt.Printf("[TRACE] %s:\n", name)
		for k := 0; k < 4; k++ {
			fmt.Printf("[TRACE]   lane%d = %016x %016x %016x %016x\n",
				k, words[4*k], words[4*k+1], words[4*k+2], words[4*k+3])
		}
	}
}

// traceState dumps the canonical view of a generator state
func traceState(name string, w stateWords) {
	if debugEnabled {
		traceSubsection(name)
		traceDoubleLanes("state", w.state)
		traceDoubleLanes("output", w.output)
		fmt.Printf("[TRACE]   counter = %016x %016x %016x %016x\n",
			w.counter[0], w.counter[1], w.counter[2], w.counter[3])
	}
}

// traceSeparator prints a visual separator in debug output
func traceSeparator(title string) {
	if debugEnabled {
		fmt.Printf("[TRACE] ========== %s ==========\n", title)
	}
}

// traceSubsection prints a subsection header
func traceSubsection(title string) {
	if debugEnabled {
		fmt.Printf("[TRACE] --- %s ---\n", title)
	}
}
