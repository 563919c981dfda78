// Package debug exposes the debug build tag to the rest of the module.
//
// Building with -tags=debug turns on expensive internal checks such as the
// remainder verification in polynomial division. Release builds compile the
// checks out entirely.
package debug

// Assert panics with msg if condition is false. Calls are eliminated at
// compile time unless the debug build tag is set.
func Assert(condition bool, msg ...string) {
	if Debug && !condition {
		m := "assertion failed"
		if len(msg) > 0 {
			m = m + ": " + msg[0]
		}
		panic(m)
	}
}
