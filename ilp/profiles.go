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

package ilp

// Built-in profile names.
const (
	ProfileDefault   = "default"
	ProfileSkylake   = "skylake"
	ProfileAlderLake = "alderlake"
	ProfileZen5      = "zen5"
	ProfileAppleM1   = "apple_m1"
)

// Values are latency × throughput-per-cycle of the dominant instruction.
// Sources: uops.info, Agner Fog's instruction tables,
// dougallj.github.io/applecpu/firestorm.html.

// width1248 expands one value per element width, in the order 1, 2, 4, 8 bytes.
func width1248(cat Category, kind numKind, k1, k2, k4, k8 uint8) []cell {
	return []cell{
		{cat, 1, kind, k1},
		{cat, 2, kind, k2},
		{cat, 4, kind, k4},
		{cat, 8, kind, k8},
	}
}

// width48 expands values for the 4 and 8 byte widths only.
func width48(cat Category, kind numKind, k4, k8 uint8) []cell {
	return []cell{
		{cat, 4, kind, k4},
		{cat, 8, kind, k8},
	}
}

func join(groups ...[]cell) []cell {
	var all []cell
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// defaultProfile is the conservative cross-platform table. Only the five
// basic categories are listed; everything else resolves to DefaultK.
//
//	+-----------+------+------+------+------+
//	| Category  |  1B  |  2B  |  4B  |  8B  |
//	+-----------+------+------+------+------+
//	| Sum       |  16  |   8  |   4  |   8  |
//	| DotProduct|   -  |   -  |   8  |   8  |
//	| Search    |   8  |   4  |   4  |   4  |
//	| Copy      |  16  |   8  |   4  |   4  |
//	| Transform |   8  |   4  |   4  |   4  |
//	+-----------+------+------+------+------+
var defaultProfile = newProfile(ProfileDefault,
	"conservative cross-platform values",
	join(
		width1248(Sum, kindAny, 16, 8, 4, 8),
		width48(DotProduct, kindAny, 8, 8),
		width1248(Search, kindAny, 8, 4, 4, 4),
		width1248(Copy, kindAny, 16, 8, 4, 4),
		width1248(Transform, kindAny, 8, 4, 4, 4),
	)...)

// skylakeProfile: 3 SIMD ports, integer add 1c x 4/cycle, FP add/mul/FMA
// 4c x 2/cycle, 2 load ports and 1 store port.
var skylakeProfile = newProfile(ProfileSkylake,
	"Intel Skylake: FP add/FMA 4c latency, 2 per cycle",
	join(
		width1248(Sum, kindAny, 16, 8, 8, 8),
		width48(DotProduct, kindAny, 8, 8),
		width1248(Search, kindAny, 8, 4, 4, 4),
		width1248(Copy, kindAny, 16, 8, 4, 4),
		width1248(Transform, kindAny, 8, 4, 4, 4),
	)...)

// alderLakeProfile covers the Golden Cove performance cores.
var alderLakeProfile = newProfile(ProfileAlderLake,
	"Intel Alder Lake P-core: VADDPS 3c, VPMULLD 10c",
	join(
		[]cell{
			{Sum, 1, kindAny, 3},   // VPADDB
			{Sum, 2, kindAny, 3},   // VPADDW
			{Sum, 4, kindInt, 3},   // VPADDD
			{Sum, 8, kindInt, 3},   // VPADDQ
			{Sum, 4, kindFloat, 6}, // VADDPS
			{Sum, 8, kindFloat, 6}, // VADDPD
		},
		width48(DotProduct, kindAny, 8, 8),
		width1248(Search, kindAny, 4, 4, 4, 4),
		width1248(Copy, kindAny, 8, 4, 4, 4),
		width1248(Transform, kindAny, 4, 4, 4, 4),
		[]cell{
			{Multiply, 4, kindFloat, 8}, // VMULPS
			{Multiply, 8, kindFloat, 8}, // VMULPD
			{Multiply, 4, kindInt, 10},  // VPMULLD
			{Multiply, 8, kindInt, 4},   // no native 64-bit multiply
		},
		width48(Divide, kindAny, 2, 2),
		width48(Sqrt, kindAny, 2, 2),
		[]cell{
			{MinMax, 1, kindAny, 2},
			{MinMax, 2, kindAny, 2},
			{MinMax, 4, kindInt, 2},
			{MinMax, 8, kindInt, 2},
			{MinMax, 4, kindFloat, 8},
			{MinMax, 8, kindFloat, 8},
		},
		width1248(Bitwise, kindAny, 3, 3, 3, 3),
		width1248(Shift, kindAny, 2, 2, 2, 2),
	)...)

var zen5Profile = newProfile(ProfileZen5,
	"AMD Zen 5: 4 vector ALUs, FP add 3c",
	join(
		[]cell{
			{Sum, 1, kindAny, 4},
			{Sum, 2, kindAny, 4},
			{Sum, 4, kindInt, 4},
			{Sum, 8, kindInt, 4},
			{Sum, 4, kindFloat, 6},
			{Sum, 8, kindFloat, 6},
		},
		width48(DotProduct, kindAny, 8, 8),
		width1248(Search, kindAny, 4, 4, 4, 4),
		width1248(Copy, kindAny, 8, 4, 4, 4),
		width1248(Transform, kindAny, 4, 4, 4, 4),
		width48(Multiply, kindAny, 6, 6),
		width48(Divide, kindAny, 4, 3),
		width48(Sqrt, kindAny, 3, 3),
		width1248(MinMax, kindAny, 4, 4, 4, 4),
		width1248(Bitwise, kindAny, 4, 4, 4, 4),
		width1248(Shift, kindAny, 4, 4, 4, 4),
	)...)

// appleM1Profile: Firestorm has 4 SIMD/FP pipes, so most cells are
// latency × 4.
var appleM1Profile = newProfile(ProfileAppleM1,
	"Apple M1 Firestorm: 4 SIMD/FP pipes, FADD 3c, FMLA 4c",
	join(
		[]cell{
			{Sum, 1, kindAny, 8},
			{Sum, 2, kindAny, 8},
			{Sum, 4, kindInt, 8},
			{Sum, 8, kindInt, 8},
			{Sum, 4, kindFloat, 12},
			{Sum, 8, kindFloat, 12},
		},
		width48(DotProduct, kindAny, 16, 16),
		width1248(Search, kindAny, 4, 4, 4, 4),
		width1248(Copy, kindAny, 8, 8, 4, 4),
		width1248(Transform, kindAny, 8, 4, 4, 4),
		[]cell{
			{Multiply, 4, kindFloat, 12},
			{Multiply, 8, kindFloat, 12},
			{Multiply, 4, kindInt, 8},
			{Multiply, 8, kindInt, 8},
		},
		width48(Divide, kindAny, 4, 4),
		width48(Sqrt, kindAny, 4, 4),
		[]cell{
			{MinMax, 1, kindAny, 8},
			{MinMax, 2, kindAny, 8},
			{MinMax, 4, kindInt, 8},
			{MinMax, 8, kindInt, 8},
			{MinMax, 4, kindFloat, 12},
			{MinMax, 8, kindFloat, 12},
		},
		width1248(Bitwise, kindAny, 8, 8, 8, 8),
		width1248(Shift, kindAny, 8, 8, 8, 8),
	)...)

// builtinProfiles is indexed by name. It is read-only after initialization.
var builtinProfiles = map[string]*Profile{
	ProfileDefault:   &defaultProfile,
	ProfileSkylake:   &skylakeProfile,
	ProfileAlderLake: &alderLakeProfile,
	ProfileZen5:      &zen5Profile,
	ProfileAppleM1:   &appleM1Profile,
}
