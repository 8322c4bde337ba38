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
	"reflect"

	"github.com/x448/float16"
)

// SelectK returns the unroll factor p recommends for a loop of category c
// over elements of elementSize bytes. Absent cells and widths other than
// 1, 2, 4 or 8 bytes give DefaultK. A nil p uses the default profile.
func SelectK(c Category, elementSize int, isFloat bool, p *Profile) int {
	if p == nil {
		p = &defaultProfile
	}
	if k, ok := p.Lookup(c, elementSize, isFloat); ok {
		return k
	}
	return DefaultK
}

var float16Type = reflect.TypeFor[float16.Float16]()

// ElementInfo returns the size in bytes of T and whether it is a
// floating-point type. float16.Float16 counts as a 2-byte float even though
// it is stored as a uint16.
func ElementInfo[T any]() (size int, isFloat bool) {
	t := reflect.TypeFor[T]()
	if t == float16Type {
		return 2, true
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return int(t.Size()), true
	case reflect.Complex64, reflect.Complex128:
		// Arithmetic is done on the float components.
		return int(t.Size()) / 2, true
	}
	return int(t.Size()), false
}

// OptimalK returns the unroll factor the active profile recommends for
// category c over elements of type T. See ActiveProfile.
func OptimalK[T any](c Category) int {
	return OptimalKFor[T](c, active())
}

// OptimalKFor is OptimalK against a given profile.
func OptimalKFor[T any](c Category, p *Profile) int {
	size, isFloat := ElementInfo[T]()
	return SelectK(c, size, isFloat, p)
}
