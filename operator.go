// SPDX-License-Identifier: MIT
package calc

import "fmt"

// Operator is a binary arithmetic operation.
type Operator int

// Supported operators.
const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

var operatorSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

// ParseOperator matches a rune to its Operator.
//
// Errors are returned unwrapped, they carry no context.
func ParseOperator(r rune) (op Operator, err error) {
	switch r {
	case '+':
		op = OpAdd
	case '-':
		op = OpSub
	case '*':
		op = OpMul
	case '/':
		op = OpDiv
	default:
		err = ErrInvalidOperator
	}

	return
}

// Apply combines two operands.
//
// Arithmetic wraps on overflow & division truncates toward zero. A zero divisor yields an
// ErrDivisionByZero.
func (op Operator) Apply(left, right int64) (value int64, err error) {
	switch op {
	case OpAdd:
		value = left + right
	case OpSub:
		value = left - right
	case OpMul:
		value = left * right
	case OpDiv:
		if right == 0 {
			err = ErrDivisionByZero
			return
		}
		value = left / right
	default:
		err = ErrInvalidOperator
	}

	return
}

// String is the fmt.Stringer implementation for Operator.
func (op Operator) String() string {
	if op >= 0 && int(op) < len(operatorSymbols) {
		return operatorSymbols[op]
	}

	return fmt.Sprintf("Operator(%d)", int(op))
}
