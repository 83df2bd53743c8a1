//go:build arm64

package vx

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. We still consult the cpu package so the
	// SVE upgrade below shares the same source of truth.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Should never happen on ARMv8+.
		setScalarMode()
		return
	}

	if HasSVE() {
		currentLevel = DispatchSVE
		// SVE vectors are scalable, at least 128-bit. Go cannot issue a
		// CNTB probe without assembly, so we advance by the architectural
		// minimum; the predicate loop is width-agnostic either way.
		currentWidth = 16
		currentName = "sve"
	}
}
