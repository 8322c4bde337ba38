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

// Package check implements the ilpvet analyzer, which reports misuse of the
// ilp package that can be seen without running the program:
//
//   - a constant unroll factor below 1, which panics at run time;
//   - a constant unroll factor above ilp.MaxUsefulK, which only logs a
//     warning at run time;
//   - a constant step of 0 in the *Step entry points;
//   - slice reductions whose integer accumulator is narrower than the
//     integer element type, which are likely to overflow.
package check

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// ILPPath is the import path of the package whose calls are checked.
const ILPPath = "github.com/ajroetker/go-ilp/ilp"

// MaxUsefulK mirrors ilp.MaxUsefulK; the analyzer does not import the
// package it checks.
const MaxUsefulK = 16

// Analyzer is the ilpvet analysis.
var Analyzer = &analysis.Analyzer{
	Name:     "ilpvet",
	Doc:      "report unroll factors out of range, zero steps and narrow accumulators in ilp loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// kArg maps each ilp entry point to the position of its unroll factor.
var kArg = map[string]int{
	"For":              2,
	"ForStep":          3,
	"ForSlice":         1,
	"Each":             2,
	"EachStep":         3,
	"EachSlice":        1,
	"Reduce":           2,
	"ReduceWhile":      2,
	"ReduceStep":       3,
	"ReduceSlice":      1,
	"ReduceSliceWhile": 1,
	"SumRange":         2,
	"SumSlice":         1,
	"Find":             2,
	"FindValue":        2,
	"FindSlice":        1,
	"FindSliceValue":   1,
	"MakeAccumulators": 0,
}

// stepArg maps the strided entry points to the position of their step.
var stepArg = map[string]int{
	"ForStep":    2,
	"EachStep":   2,
	"ReduceStep": 2,
}

// sliceReductions are the entry points whose result accumulates the
// elements of their first argument.
var sliceReductions = map[string]bool{
	"ReduceSlice":      true,
	"ReduceSliceWhile": true,
	"ReduceSliceAuto":  true,
	"SumSlice":         true,
	"SumSliceAuto":     true,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != ILPPath {
			return
		}
		name := fn.Name()

		if idx, ok := kArg[name]; ok && idx < len(call.Args) {
			if k, ok := constInt(pass, call.Args[idx]); ok {
				if msg := checkK(k); msg != "" {
					pass.Reportf(call.Args[idx].Pos(), "ilp.%s: %s", name, msg)
				}
			}
		}

		if idx, ok := stepArg[name]; ok && idx < len(call.Args) {
			if step, ok := constInt(pass, call.Args[idx]); ok && step == 0 {
				pass.Reportf(call.Args[idx].Pos(), "ilp.%s: step is 0, the call panics", name)
			}
		}

		if sliceReductions[name] && len(call.Args) > 0 {
			acc, arg := pass.TypesInfo.TypeOf(call), pass.TypesInfo.TypeOf(call.Args[0])
			if acc == nil || arg == nil {
				return
			}
			slice, ok := arg.Underlying().(*types.Slice)
			if ok && overflowRisk(pass.TypesSizes, acc, slice.Elem()) {
				pass.Reportf(call.Pos(), "ilp.%s: accumulator type %s is narrower than element type %s and may overflow; "+
					"accumulate into a wider type", name, acc, slice.Elem())
			}
		}
	})
	return nil, nil
}

func constInt(pass *analysis.Pass, expr ast.Expr) (int64, bool) {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
		return 0, false
	}
	return constant.Int64Val(tv.Value)
}

// checkK returns a diagnostic for a constant unroll factor, or "" if k is
// fine.
func checkK(k int64) string {
	switch {
	case k < 1:
		return "unroll factor must be at least 1, the call panics"
	case k > MaxUsefulK:
		return fmt.Sprintf("unroll factor %d exceeds %d: it is likely counterproductive, typical values are 4 to 8",
			k, MaxUsefulK)
	}
	return ""
}

// overflowRisk reports whether acc and elem are both integer types and acc
// is smaller. Equal sizes are not reported.
func overflowRisk(sizes types.Sizes, acc, elem types.Type) bool {
	if !isInteger(acc) || !isInteger(elem) {
		return false
	}
	if sizes == nil {
		sizes = types.SizesFor("gc", "amd64")
	}
	return sizes.Sizeof(acc) < sizes.Sizeof(elem)
}

func isInteger(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsInteger != 0
}
