package check

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestCheckK(t *testing.T) {
	tests := []struct {
		k       int64
		wantMsg string
	}{
		{-1, "at least 1"},
		{0, "at least 1"},
		{1, ""},
		{8, ""},
		{16, ""},
		{17, "exceeds 16"},
		{64, "unroll factor 64"},
	}
	for _, tt := range tests {
		got := checkK(tt.k)
		if tt.wantMsg == "" {
			assert.Empty(t, got, "k=%d", tt.k)
			continue
		}
		assert.Contains(t, got, tt.wantMsg, "k=%d", tt.k)
	}
}

func TestOverflowRisk(t *testing.T) {
	sizes := types.SizesFor("gc", "arm64")
	named := types.NewNamed(types.NewTypeName(0, nil, "Count", nil), types.Typ[types.Int16], nil)
	tests := []struct {
		name      string
		acc, elem types.Type
		want      bool
	}{
		{"int8_from_int32", types.Typ[types.Int8], types.Typ[types.Int32], true},
		{"uint16_from_uint64", types.Typ[types.Uint16], types.Typ[types.Uint64], true},
		{"int32_from_int", types.Typ[types.Int32], types.Typ[types.Int], true},
		{"named_int16_from_int32", named, types.Typ[types.Int32], true},
		{"same_size", types.Typ[types.Int32], types.Typ[types.Uint32], false},
		{"wider", types.Typ[types.Int64], types.Typ[types.Int8], false},
		{"float_acc", types.Typ[types.Float32], types.Typ[types.Int64], false},
		{"float_elem", types.Typ[types.Int8], types.Typ[types.Float64], false},
		{"string_elem", types.Typ[types.Int8], types.Typ[types.String], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overflowRisk(sizes, tt.acc, tt.elem); got != tt.want {
				t.Errorf("overflowRisk(%s, %s) = %v, want %v", tt.acc, tt.elem, got, tt.want)
			}
		})
	}
	assert.True(t, overflowRisk(nil, types.Typ[types.Int8], types.Typ[types.Int16]))
}

func TestArgTables(t *testing.T) {
	// The step always precedes the unroll factor.
	for name, step := range stepArg {
		k, ok := kArg[name]
		if assert.True(t, ok, name) {
			assert.Equal(t, step+1, k, name)
		}
	}
	for name := range sliceReductions {
		if idx, ok := kArg[name]; ok {
			assert.Equal(t, 1, idx, name)
		}
	}
	assert.NoError(t, analysis.Validate([]*analysis.Analyzer{Analyzer}))
}

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "loops")
}

// ilpParams returns the parameter names of every top-level function in the
// ilp package sources.
func ilpParams(t *testing.T) map[string][]string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("..", "..", "..", "ilp", "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	fset := token.NewFileSet()
	params := make(map[string][]string)
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
		require.NoError(t, err)
		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil {
				continue
			}
			var names []string
			for _, field := range fn.Type.Params.List {
				for _, name := range field.Names {
					names = append(names, name.Name)
				}
			}
			params[fn.Name.Name] = names
		}
	}
	return params
}

func TestArgTablesMatchSource(t *testing.T) {
	params := ilpParams(t)
	for name, idx := range kArg {
		names, ok := params[name]
		if assert.True(t, ok, "ilp.%s does not exist", name) && assert.Less(t, idx, len(names), name) {
			assert.Equal(t, "k", names[idx], "unroll factor position of ilp.%s", name)
		}
	}
	for name, idx := range stepArg {
		names, ok := params[name]
		if assert.True(t, ok, "ilp.%s does not exist", name) && assert.Less(t, idx, len(names), name) {
			assert.Equal(t, "step", names[idx], "step position of ilp.%s", name)
		}
	}
	for name := range sliceReductions {
		names, ok := params[name]
		if assert.True(t, ok, "ilp.%s does not exist", name) && assert.NotEmpty(t, names, name) {
			assert.Equal(t, "s", names[0], "slice position of ilp.%s", name)
		}
	}
}
