//go:build !flathash_debug

package flathash

// debugAssert is a no-op in release builds.
func debugAssert(cond bool, msg string) {}
