// Copyright 2025 go-vecdist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// vecdist-cpuinfo prints the dispatch decision and the CPU features it was
// based on. Useful when a deployment reports unexpected kernel bindings.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/velovec/go-vecdist/dist"
	"github.com/velovec/go-vecdist/vx"
)

func main() {
	fmt.Printf("arch:      %s\n", runtime.GOARCH)
	fmt.Printf("level:     %s\n", vx.CurrentName())
	fmt.Printf("width:     %d bytes (%d uint8 lanes)\n", vx.CurrentWidth(), vx.MaxLanes[uint8]())
	fmt.Printf("kernels:   %s\n", dist.Backend())

	if v := os.Getenv("VECDIST_NO_SIMD"); v != "" {
		fmt.Printf("override:  VECDIST_NO_SIMD=%s\n", v)
	}
	if v := os.Getenv("VECDIST_NO_SVE"); v != "" {
		fmt.Printf("override:  VECDIST_NO_SVE=%s\n", v)
	}

	switch runtime.GOARCH {
	case "amd64":
		fmt.Println("features:")
		fmt.Printf("  AVX2:       %v\n", cpu.X86.HasAVX2)
		fmt.Printf("  AVX512F:    %v\n", cpu.X86.HasAVX512F)
		fmt.Printf("  AVX512BW:   %v\n", cpu.X86.HasAVX512BW)
		fmt.Printf("  POPCNT:     %v\n", cpu.X86.HasPOPCNT)
	case "arm64":
		fmt.Println("features:")
		fmt.Printf("  ASIMD:      %v\n", cpu.ARM64.HasASIMD)
		fmt.Printf("  SVE:        %v\n", cpu.ARM64.HasSVE)
	}
}
