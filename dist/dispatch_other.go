//go:build !amd64 && !arm64

package dist

// Other architectures run the serial kernels.
