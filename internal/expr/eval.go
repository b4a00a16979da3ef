package expr

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a division's right operand evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// SymbolError reports an identifier missing from the symbol table.
type SymbolError struct {
	Name string
}

func (e *SymbolError) Error() string { return fmt.Sprintf("unknown symbol %q", e.Name) }

// EvalTree computes the value of a parsed tree. Symbols may be nil when the
// expression contains no identifiers.
func EvalTree(n Node, symbols map[string]float64) (float64, error) {
	switch n := n.(type) {
	case Literal:
		return n.Value, nil
	case Ident:
		v, ok := symbols[n.Name]
		if !ok {
			return 0, &SymbolError{Name: n.Name}
		}
		return v, nil
	case Unary:
		v, err := EvalTree(n.X, symbols)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case Binary:
		l, err := EvalTree(n.L, symbols)
		if err != nil {
			return 0, err
		}
		r, err := EvalTree(n.R, symbols)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, ErrDivisionByZero
			}
			return l / r, nil
		}
	}
	return 0, fmt.Errorf("malformed expression tree %T", n)
}

// Eval parses src and evaluates it against symbols in one step.
func Eval(src string, symbols map[string]float64) (float64, error) {
	n, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return EvalTree(n, symbols)
}
