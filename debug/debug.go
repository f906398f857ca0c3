// Package debug gates trace output for the patch engine.  Each switch
// is read once from the environment at startup; there is nothing to
// configure at runtime.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	IPS   bool
	Delta bool
	Apply bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("ROMPATCH_DEBUG_DIFF")
	d.IPS = boolEnv("ROMPATCH_DEBUG_IPS")
	d.Delta = boolEnv("ROMPATCH_DEBUG_DELTA")
	d.Apply = boolEnv("ROMPATCH_DEBUG_APPLY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func IPS() bool {
	return d.IPS
}
func Delta() bool {
	return d.Delta
}
func Apply() bool {
	return d.Apply
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
