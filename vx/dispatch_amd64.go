//go:build amd64 && !goexperiment.simd

package vx

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the archsimd kernels are not compiled, so the
// distance kernels run their portable fallbacks either way. We still detect
// the real CPU features so that CurrentWidth drives the scalable-model loops
// and diagnostics report the hardware truthfully.

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		// SSE2 is baseline for amd64.
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
