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

// Package algo provides search, counting, copy and transform algorithms
// built on the ilp engine.
//
// # Search API
//
// Searches return the position of the first match, exactly like a
// sequential scan, while evaluating the predicate over blocks of K elements:
//   - Find, FindIf, FindIfP: index of the first match, or -1
//   - Contains
//   - All, Any, None (and the *P variants)
//   - ArgMin, ArgMax, MinMax
//
// Counting accumulates into K independent counters:
//   - Count, CountIf, CountIfP
//
// Element-wise operations:
//   - Copy, CopyIf, CopyIfP, Fill
//   - Transform
//
// Predicates passed to searches may be evaluated for up to K-1 elements past
// the first match, so they must not have side effects.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-ilp/ilp/contrib/algo"
//
//	idx := algo.FindIfP(data, algo.GreaterThan[float32]{Threshold: 10})
//	n := algo.CountIf(data, func(v float32) bool { return v < 0 })
package algo
