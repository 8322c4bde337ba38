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

// Command ilpvet reports misuse of the ilp package: unroll factors out of
// range, zero steps and reductions into integer accumulators narrower than
// their elements.
//
// Usage:
//
//	ilpvet ./...
//	go vet -vettool=$(which ilpvet) ./...
package main

import (
	"github.com/ajroetker/go-ilp/cmd/ilpvet/check"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(check.Analyzer)
}
