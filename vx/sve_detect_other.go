//go:build !(linux && arm64)

package vx

// HasSVE returns false on platforms where the kernel does not report SVE
// support through the auxiliary vector (everything except linux/arm64).
func HasSVE() bool {
	return false
}
