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
	"math"
	"reflect"

	"github.com/gomlx/exceptions"
)

// Op is an associative binary operation used to combine reduction values.
//
// An Op may carry an identity element e, with combine(e, x) == x for every x.
// Reductions over an Op with identity seed all K accumulator lanes with it
// and fold init in once at the end. Reductions over an Op without one run
// with K=1, since any other seeding would apply init more than once.
type Op[T any] struct {
	name        string
	combine     func(a, b T) T
	identity    T
	hasIdentity bool
}

// NewOp returns an Op with no known identity.
func NewOp[T any](name string, combine func(a, b T) T) Op[T] {
	return Op[T]{name: name, combine: combine}
}

// NewMonoid returns an Op whose identity is declared by the caller.
// The identity must satisfy combine(identity, x) == x, otherwise results
// depend on K.
func NewMonoid[T any](name string, combine func(a, b T) T, identity T) Op[T] {
	return Op[T]{name: name, combine: combine, identity: identity, hasIdentity: true}
}

// Name returns the name given to the op.
func (o Op[T]) Name() string {
	return o.name
}

// Identity returns the identity element and whether one is known.
func (o Op[T]) Identity() (T, bool) {
	return o.identity, o.hasIdentity
}

// Apply combines a and b.
func (o Op[T]) Apply(a, b T) T {
	return o.combine(a, b)
}

func (o Op[T]) check() {
	if o.combine == nil {
		exceptions.Panicf("ilp: op %q has no combining function", o.name)
	}
}

// Add returns addition, with identity 0.
func Add[T Numbers]() Op[T] {
	return NewMonoid("add", func(a, b T) T { return a + b }, 0)
}

// Mul returns multiplication, with identity 1.
func Mul[T Numbers]() Op[T] {
	return NewMonoid("mul", func(a, b T) T { return a * b }, 1)
}

// And returns bitwise and, with identity all ones.
func And[T Integers]() Op[T] {
	return NewMonoid("and", func(a, b T) T { return a & b }, ^T(0))
}

// Or returns bitwise or, with identity 0.
func Or[T Integers]() Op[T] {
	return NewMonoid("or", func(a, b T) T { return a | b }, 0)
}

// Xor returns bitwise exclusive or, with identity 0.
func Xor[T Integers]() Op[T] {
	return NewMonoid("xor", func(a, b T) T { return a ^ b }, 0)
}

// Min returns the minimum, with identity the largest value of T (+Inf for
// floats). NaN values being combined in are ignored.
func Min[T Numbers]() Op[T] {
	return NewMonoid("min", func(a, b T) T {
		if b < a {
			return b
		}
		return a
	}, extreme[T](true))
}

// Max returns the maximum, with identity the smallest value of T (-Inf for
// floats).
func Max[T Numbers]() Op[T] {
	return NewMonoid("max", func(a, b T) T {
		if b > a {
			return b
		}
		return a
	}, extreme[T](false))
}

// extreme returns the largest (high) or smallest value representable by T.
func extreme[T Numbers](high bool) T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	bits := rv.Type().Bits()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if high {
			rv.SetInt(math.MaxInt64 >> (64 - bits))
		} else {
			rv.SetInt(math.MinInt64 >> (64 - bits))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if high {
			rv.SetUint(math.MaxUint64 >> (64 - bits))
		}
	case reflect.Float32, reflect.Float64:
		if high {
			rv.SetFloat(math.Inf(1))
		} else {
			rv.SetFloat(math.Inf(-1))
		}
	}
	return v
}
