package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Or      bool
	Source  bool
	Serve   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("RESHAPE_DEBUG_CONVERT")
	d.Or = boolEnv("RESHAPE_DEBUG_OR")
	d.Source = boolEnv("RESHAPE_DEBUG_SOURCE")
	d.Serve = boolEnv("RESHAPE_DEBUG_SERVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Or() bool {
	return d.Or
}
func Source() bool {
	return d.Source
}
func Serve() bool {
	return d.Serve
}
