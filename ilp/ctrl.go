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
	"runtime"

	"github.com/gomlx/exceptions"
)

// Ctrl lets a loop body stop the loop it runs in.
//
// Each loop invocation creates one Ctrl and passes it to every body call.
// The loop checks it after each element: once stopped, no further element
// is processed. Only the first Break or Return has an effect.
type Ctrl[R any] struct {
	stopped bool
	value   Option[R]
}

// Break stops the loop without producing a value.
func (c *Ctrl[R]) Break() {
	if c.stopped {
		return
	}
	c.stopped = true
}

// Return stops the loop and makes v the loop's value.
func (c *Ctrl[R]) Return(v R) {
	if c.stopped {
		return
	}
	c.stopped = true
	c.value = Some(v)
}

// Stopped reports whether Break or Return was called.
func (c *Ctrl[R]) Stopped() bool {
	return c.stopped
}

func (c *Ctrl[R]) result() Result[R] {
	return Result[R]{stopped: c.stopped, value: c.value}
}

// Result is the outcome of a loop run with a Ctrl.
type Result[R any] struct {
	stopped bool
	value   Option[R]
}

// Stopped reports whether the body ended the loop early, with or without a
// value.
func (r Result[R]) Stopped() bool {
	return r.stopped
}

// Value returns the value passed to Ctrl.Return, if any.
func (r Result[R]) Value() (R, bool) {
	return r.value.Get()
}

// HasValue reports whether the loop produced a value.
func (r Result[R]) HasValue() bool {
	return r.value.IsSome()
}

// Option returns the loop's value as an Option.
func (r Result[R]) Option() Option[R] {
	return r.value
}

// Discard asserts that the loop produced no value, for callers that only
// use Break. It panics, naming the calling line, if Return was used.
func (r Result[R]) Discard() {
	if !r.value.IsSome() {
		return
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	exceptions.Panicf("ilp: loop value discarded at %s:%d: the body called Return, "+
		"read the value with Result.Value instead", file, line)
}
