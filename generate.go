// SPDX-License-Identifier: MIT
package calc

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

type (
	// Generator produces random prefix notation programs, for use as benchmark input.
	//
	// A Generator is not safe for concurrent use.
	Generator struct {
		rng *rand.Rand

		depth      int
		maxLiteral int64
		parens     bool
	}

	// GeneratorOption defines the Generator functional option type.
	GeneratorOption func(*Generator)

	// corruption turns a valid program into one that fails to evaluate.
	corruption func(program string) string
)

const (
	defGeneratorDepth = 8
	defMaxLiteral     = 1000

	// Odds, as 1 in n, of an early leaf & of wrapping an expression in parentheses.
	leafOdds  = 4
	parenOdds = 3
)

var operators = [...]Operator{OpAdd, OpSub, OpMul, OpDiv}

// Each corruption yields a distinct error kind regardless of the program it is applied to.
var corruptions = [...]corruption{
	// Unknown operator.
	func(program string) string { return "% 1 " + program },
	// Missing operand.
	func(program string) string { return "+ " + program },
	// Unmatched parenthesis.
	func(program string) string { return "(" + program },
	// Mismatched closing character.
	func(program string) string { return "(" + program + "]" },
}

// NewGenerator instantiates a Generator seeded for reproducible output.
func NewGenerator(seed int64, options ...GeneratorOption) *Generator {
	g := &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		depth:      defGeneratorDepth,
		maxLiteral: defMaxLiteral,
	}

	for _, opt := range options {
		opt(g)
	}

	return g
}

// WithDepth configures the maximum expression depth.
func WithDepth(depth int) GeneratorOption {
	return func(g *Generator) {
		if depth >= 0 {
			g.depth = depth
		}
	}
}

// WithMaxLiteral configures the largest literal generated.
func WithMaxLiteral(limit int64) GeneratorOption {
	return func(g *Generator) {
		if limit >= 0 && limit < math.MaxInt64 {
			g.maxLiteral = limit
		}
	}
}

// WithParens enables random parenthesised grouping.
func WithParens(parens bool) GeneratorOption { return func(g *Generator) { g.parens = parens } }

// Program generates a well-formed program that never divides by zero.
func (g *Generator) Program() string {
	var buffer strings.Builder
	g.write(&buffer, g.depth, true)

	return buffer.String()
}

// Malformed generates a program that fails to evaluate.
func (g *Generator) Malformed() string {
	corrupt := corruptions[g.rng.Intn(len(corruptions))]
	return corrupt(g.Program())
}

// write appends an expression of at most depth levels to buffer, returning its value.
func (g *Generator) write(buffer *strings.Builder, depth int, root bool) (value int64) {
	if depth < 1 || (!root && g.rng.Intn(leafOdds) == 0) {
		value = g.rng.Int63n(g.maxLiteral + 1)
		buffer.WriteString(strconv.FormatInt(value, 10))

		return
	}

	grouped := g.parens && g.rng.Intn(parenOdds) == 0
	if grouped {
		buffer.WriteByte('(')
	}

	// Operands are rendered first so that a zero divisor can be avoided.
	var left, right strings.Builder
	leftValue := g.write(&left, depth-1, false)
	rightValue := g.write(&right, depth-1, false)

	op := operators[g.rng.Intn(len(operators))]
	if op == OpDiv && rightValue == 0 {
		op = OpAdd
	}
	value, _ = op.Apply(leftValue, rightValue)

	buffer.WriteString(op.String())
	buffer.WriteByte(' ')
	buffer.WriteString(left.String())
	buffer.WriteByte(' ')
	buffer.WriteString(right.String())

	if grouped {
		buffer.WriteByte(')')
	}

	return
}
