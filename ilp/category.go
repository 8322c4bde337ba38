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

import (
	"strings"

	"github.com/pkg/errors"
)

// Category classifies the dependency pattern of a loop body.
// It selects the row of a Profile used to pick the unroll factor.
type Category int

const (
	// Sum is an additive reduction: acc += x.
	Sum Category = iota

	// DotProduct is a fused multiply-add reduction: acc += a * b.
	DotProduct

	// Search is an early-exit scan. Profiles keep K low here because work
	// done past the true exit point is wasted.
	Search

	// Copy moves elements: dst[i] = src[i].
	Copy

	// Transform maps elements: dst[i] = f(src[i]).
	Transform

	// Multiply is a product reduction: acc *= x.
	Multiply

	// Divide is dominated by a division with high latency and low throughput.
	Divide

	// Sqrt is dominated by a square root, which shares the divider.
	Sqrt

	// MinMax is a min or max reduction.
	MinMax

	// Bitwise is an and/or/xor reduction.
	Bitwise

	// Shift is dominated by shifts.
	Shift

	numCategories
)

var categoryNames = [numCategories]string{
	Sum:        "sum",
	DotProduct: "dotproduct",
	Search:     "search",
	Copy:       "copy",
	Transform:  "transform",
	Multiply:   "multiply",
	Divide:     "divide",
	Sqrt:       "sqrt",
	MinMax:     "minmax",
	Bitwise:    "bitwise",
	Shift:      "shift",
}

// String returns the lower-case name of the category.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	all := make([]Category, numCategories)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}

// ParseCategory converts a name such as "Sum", "dot_product" or "minmax"
// into a Category. Matching ignores case, '-' and '_'.
func ParseCategory(name string) (Category, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(name)))
	for i, n := range categoryNames {
		if n == key {
			return Category(i), nil
		}
	}
	return 0, errors.Errorf("ilp: unknown category %q (valid: %s)", name, strings.Join(categoryNames[:], ", "))
}
