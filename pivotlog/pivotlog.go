// Package pivotlog is an opt-in, dependency-free tracer for the pivot
// solve pipeline. The library performs no logging of its own by default
// (callers decide whether to catch and how to present errors); this
// package exists only so a caller debugging a stubborn reduction can
// flip tracing on for the duration of a call, mirroring how the teacher
// exposes OnVisit/OnEnqueue hooks for observability without imposing a
// dependency on every caller.
package pivotlog

import (
	"fmt"
	"os"
	"sync/atomic"
)

// enabled gates every Tracef call. Zero value (disabled) is the default,
// matching "no logging of its own" from the error-handling contract.
var enabled int32

// SetEnabled turns tracing on or off for the process. Not safe to race
// against concurrent SolveEquationSet calls expecting a stable setting,
// but the flip itself is atomic.
func SetEnabled(on bool) {
	v := int32(0)
	if on {
		v = 1
	}
	atomic.StoreInt32(&enabled, v)
}

// Enabled reports whether tracing is currently active.
func Enabled() bool {
	return atomic.LoadInt32(&enabled) != 0
}

// Tracef writes a formatted trace line to stderr when tracing is enabled.
// No-op otherwise, so hot paths only pay the cost of one atomic load.
func Tracef(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	fmt.Fprintf(os.Stderr, "pivot: "+format+"\n", args...)
}
