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

package algo

import "github.com/ajroetker/go-ilp/ilp"

// Predicate is a test applied to one element at a time. Functions with a P
// suffix take the predicate as a type parameter, so Test is a static call.
type Predicate[T any] interface {
	Test(v T) bool
}

// FuncPredicate adapts a plain function to Predicate.
type FuncPredicate[T any] struct {
	Fn func(T) bool
}

func (f FuncPredicate[T]) Test(v T) bool { return f.Fn(v) }

// Comparisons against a fixed threshold.
type (
	GreaterThan[T ilp.Ordered]  struct{ Threshold T }
	LessThan[T ilp.Ordered]     struct{ Threshold T }
	GreaterEqual[T ilp.Ordered] struct{ Threshold T }
	LessEqual[T ilp.Ordered]    struct{ Threshold T }
)

func (g GreaterThan[T]) Test(v T) bool  { return v > g.Threshold }
func (l LessThan[T]) Test(v T) bool     { return v < l.Threshold }
func (g GreaterEqual[T]) Test(v T) bool { return v >= g.Threshold }
func (l LessEqual[T]) Test(v T) bool    { return v <= l.Threshold }

// Equal matches elements equal to Value; NotEqual matches the others.
type (
	Equal[T comparable]    struct{ Value T }
	NotEqual[T comparable] struct{ Value T }
)

func (e Equal[T]) Test(v T) bool    { return v == e.Value }
func (e NotEqual[T]) Test(v T) bool { return v != e.Value }

// InRange matches Min <= v <= Max, bounds included.
type InRange[T ilp.Ordered] struct{ Min, Max T }

func (r InRange[T]) Test(v T) bool { return r.Min <= v && v <= r.Max }

// OutOfRange is the complement of InRange.
type OutOfRange[T ilp.Ordered] struct{ Min, Max T }

func (r OutOfRange[T]) Test(v T) bool { return v < r.Min || r.Max < v }

// Sign tests. A float NaN matches none of them except IsNonZero.
type (
	IsZero[T ilp.Numbers]     struct{}
	IsNonZero[T ilp.Numbers]  struct{}
	IsPositive[T ilp.Numbers] struct{}
	IsNegative[T ilp.Numbers] struct{}
)

func (IsZero[T]) Test(v T) bool     { return v == 0 }
func (IsNonZero[T]) Test(v T) bool  { return v != 0 }
func (IsPositive[T]) Test(v T) bool { return v > 0 }
func (IsNegative[T]) Test(v T) bool { return v < 0 }

type not[T any, P Predicate[T]] struct{ p P }

func (n not[T, P]) Test(v T) bool { return !n.p.Test(v) }
