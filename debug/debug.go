package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval   bool
	Expand bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("NEST_DEBUG_EVAL")
	d.Expand = boolEnv("NEST_DEBUG_EXPAND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Expand() bool {
	return d.Expand
}
