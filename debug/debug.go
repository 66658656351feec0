package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Fixers   bool
	Engine   bool
	Sections bool
}

var d *debug

func init() {
	d = &debug{}
	d.Fixers = boolEnv("YAMLFIX_DEBUG_FIXERS")
	d.Engine = boolEnv("YAMLFIX_DEBUG_ENGINE")
	d.Sections = boolEnv("YAMLFIX_DEBUG_SECTIONS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Fixers() bool {
	return d.Fixers
}
func Engine() bool {
	return d.Engine
}
func Sections() bool {
	return d.Sections
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
