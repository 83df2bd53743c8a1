//go:build !amd64 && !arm64

package vx

func init() {
	// Non-amd64, non-arm64 architectures fall back to scalar mode.
	setScalarMode()
}
