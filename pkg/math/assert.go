package math

import "fmt"

// assertf panics when cond is false in glm_debug builds.
// Release builds drop the check entirely.
func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("glmath: "+format, args...))
	}
}

// Debug reports whether the package was built with the glm_debug tag.
const Debug = debugAssertions
