// Copyright 2025 go-highway Authors
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

//go:build amd64

package ilp

import "golang.org/x/sys/cpu"

func hostFeatures() []string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}
	add("sse2", cpu.X86.HasSSE2)
	add("sse4.2", cpu.X86.HasSSE42)
	add("avx", cpu.X86.HasAVX)
	add("avx2", cpu.X86.HasAVX2)
	add("fma", cpu.X86.HasFMA)
	add("avx512f", cpu.X86.HasAVX512F)
	add("avx512bw", cpu.X86.HasAVX512BW)
	add("avx512vl", cpu.X86.HasAVX512VL)
	add("avx512bf16", cpu.X86.HasAVX512BF16)
	return features
}

// hostProfile returns "" on x86: Skylake, Alder Lake and Zen 5 share the
// AVX2/FMA feature set, so the choice is left to ILP_CPU.
func hostProfile(goos string) string {
	return ""
}
