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

const (
	// DefaultK is the unroll factor used when a profile has no entry for a
	// (category, width, float-ness) combination.
	DefaultK = 4

	// MaxUsefulK is the largest unroll factor that is not flagged as
	// counter-productive. Larger values run correctly but exceed the
	// execution ports of every supported CPU and bloat the instruction cache.
	MaxUsefulK = 16
)

// Element widths, in bytes, that profiles carry entries for.
var widths = [numWidths]int{1, 2, 4, 8}

const numWidths = 4

// numKind selects the integer or floating-point column of a profile cell.
type numKind int

const (
	kindInt numKind = iota
	kindFloat
	// kindAny fills both columns; used where the original hardware table
	// does not distinguish integer and floating-point operands.
	kindAny
)

// Profile holds the recommended unroll factor of one microarchitecture for
// every (Category, element width, float-ness) cell.
//
// Each value is latency × throughput-per-cycle of the dominant instruction:
// the number of independent chains needed to keep its execution units busy.
// A floating-point add with 4 cycles of latency and 2 issues per cycle
// needs 8 chains.
//
// Profiles are plain values. The built-in ones are created at package
// initialization and never modified; two lookups of the same name compare
// equal with ==.
type Profile struct {
	// Name is the lookup key, e.g. "skylake".
	Name string

	// Description is a one-line summary of the microarchitecture.
	Description string

	// k holds the unroll factors; 0 marks an absent cell.
	k [numCategories][numWidths][2]uint8
}

// cell is one row of a profile table, used only to build profiles.
type cell struct {
	cat  Category
	size int
	kind numKind
	k    uint8
}

func newProfile(name, description string, cells ...cell) Profile {
	p := Profile{Name: name, Description: description}
	for _, c := range cells {
		w, ok := widthIndex(c.size)
		if !ok || !c.cat.Valid() {
			panic("ilp: invalid profile cell in " + name)
		}
		switch c.kind {
		case kindInt:
			p.k[c.cat][w][kindInt] = c.k
		case kindFloat:
			p.k[c.cat][w][kindFloat] = c.k
		default:
			p.k[c.cat][w][kindInt] = c.k
			p.k[c.cat][w][kindFloat] = c.k
		}
	}
	return p
}

func widthIndex(size int) (int, bool) {
	for i, w := range widths {
		if w == size {
			return i, true
		}
	}
	return 0, false
}

// Lookup returns the unroll factor stored for the exact cell and whether
// the cell exists. It does not apply any fallback; see SelectK for that.
func (p *Profile) Lookup(c Category, elementSize int, isFloat bool) (int, bool) {
	if p == nil || !c.Valid() {
		return 0, false
	}
	w, ok := widthIndex(elementSize)
	if !ok {
		return 0, false
	}
	col := kindInt
	if isFloat {
		col = kindFloat
	}
	k := p.k[c][w][col]
	if k == 0 {
		return 0, false
	}
	return int(k), true
}

// Widths returns the element widths, in bytes, a profile may carry entries for.
func Widths() []int {
	return append([]int(nil), widths[:]...)
}

// String returns the profile name.
func (p Profile) String() string {
	return p.Name
}
