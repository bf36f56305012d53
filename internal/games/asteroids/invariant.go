package asteroids

import "fmt"

// invariant panics when cond is false in builds tagged debug.
// Release builds compile it to nothing.
func invariant(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("asteroids: invariant violated: "+format, args...))
	}
}
