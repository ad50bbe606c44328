//go:build !debug

package debug

const Debug = false

// Assert does nothing if the debug build tag is not provided.
func Assert(condition bool, message ...string) {}
