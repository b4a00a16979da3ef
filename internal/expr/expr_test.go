package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want float64
	}{
		{"literal", "42", 42},
		{"decimal", "3.5", 3.5},
		{"leading dot", ".5", 0.5},
		{"add", "1+2", 3},
		{"subtract", "10-4", 6},
		{"multiply", "6*7", 42},
		{"divide", "9/2", 4.5},
		{"precedence", "2+3*4", 14},
		{"left assoc", "10-4-3", 3},
		{"parens", "(2+3)*4", 20},
		{"nested parens", "((1+2))*(3+1)", 12},
		{"unary minus", "-5", -5},
		{"double unary", "--5", 5},
		{"unary in sum", "2+-3", -1},
		{"unary paren", "-(2+3)", -5},
		{"spaces", " 1 + 2 * 3 ", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.src, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEval_Symbols(t *testing.T) {
	symbols := map[string]float64{"Dim1": 800, "Dim2": 200, "Dim3": 16}

	got, err := Eval("Dim1/2", symbols)
	require.NoError(t, err)
	assert.Equal(t, 400.0, got)

	got, err = Eval("Dim2*2", symbols)
	require.NoError(t, err)
	assert.Equal(t, 400.0, got)

	got, err = Eval("Dim1-Dim2+Dim3", symbols)
	require.NoError(t, err)
	assert.Equal(t, 616.0, got)
}

func TestEval_UnknownSymbol(t *testing.T) {
	_, err := Eval("Dim9*2", map[string]float64{"Dim1": 800})
	require.Error(t, err)
	var symErr *SymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, "Dim9", symErr.Name)
}

func TestEval_DivisionByZero(t *testing.T) {
	_, err := Eval("1/0", nil)
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = Eval("1/(2-2)", nil)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"bad char", "1 @ 2"},
		{"unclosed paren", "(1+2"},
		{"unexpected paren", "bad((("},
		{"trailing token", "1 2"},
		{"dangling operator", "1+"},
		{"double dot", "1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			var tokErr *TokenError
			assert.ErrorAs(t, err, &tokErr)
		})
	}
}

func TestParse_Tree(t *testing.T) {
	n, err := Parse("1+2*3")
	require.NoError(t, err)
	root, ok := n.(Binary)
	require.True(t, ok)
	assert.Equal(t, byte('+'), root.Op)
	right, ok := root.R.(Binary)
	require.True(t, ok)
	assert.Equal(t, byte('*'), right.Op)
}
